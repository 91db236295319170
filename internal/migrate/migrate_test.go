package migrate

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/and161185/kid-clinic/migrations"
)

func TestEmbeddedMigrations_HaveGooseSections(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil || len(files) == 0 {
		t.Fatalf("no embedded migrations: %v", err)
	}
	for _, f := range files {
		b, err := fs.ReadFile(migrations.FS, f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") || !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s: missing goose sections", f)
		}
	}
}

func TestGooseLogger_WritesInfo(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	l := gooseLogger{zap.New(core).Sugar()}
	l.Printf("OK   %s (%dms)", "00001_preferences.sql", 3)

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "OK   00001_preferences.sql (3ms)" {
		t.Fatalf("unexpected log entries: %v", entries)
	}
}

func TestUp_UnreachableDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Up(ctx, "postgres://kc@127.0.0.1:1/kc?sslmode=disable&connect_timeout=1", nil)
	if err == nil || !strings.Contains(err.Error(), "migrate preferences") {
		t.Fatalf("want migrate preferences error, got %v", err)
	}
}
