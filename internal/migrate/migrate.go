// Package migrate creates and upgrades the Postgres preference table.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/logger"
	"github.com/and161185/kid-clinic/migrations"
)

// gooseLogger routes goose progress lines into zap at info level.
type gooseLogger struct{ *zap.SugaredLogger }

func (l gooseLogger) Printf(format string, v ...any) { l.Infof(format, v...) }

// Up brings the preference table at dsn to the latest embedded version.
func Up(ctx context.Context, dsn string, log *zap.Logger) error {
	log = logger.OrNop(log).Named("migrate")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("migrate preferences: open: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate preferences: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate preferences: %w", err)
	}
	log.Debug("preference table up to date")
	return nil
}
