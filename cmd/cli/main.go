// Command kc is a terminal client for the kid clinic API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/api"
	"github.com/and161185/kid-clinic/internal/config"
	"github.com/and161185/kid-clinic/internal/i18n"
	"github.com/and161185/kid-clinic/internal/logger"
	"github.com/and161185/kid-clinic/internal/metrics"
	"github.com/and161185/kid-clinic/internal/migrate"
	"github.com/and161185/kid-clinic/internal/prefs"
	"github.com/and161185/kid-clinic/internal/prefs/pgstore"
	"github.com/and161185/kid-clinic/internal/prefs/redisstore"
	"github.com/and161185/kid-clinic/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// errUsage makes run exit with status 2.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app is what every command needs.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	store  prefs.Store
	clinic api.Clinic
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	tick   time.Duration // cooldown tick of the OTP screen
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, rest, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	if len(rest) < 1 {
		usage(errOut)
		return 2
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	store, closeStore, err := openPrefs(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	client := session.New(cfg.BaseURL, cfg.Timeout, store,
		session.WithLogger(log),
		session.WithMetrics(metrics.New(reg)),
	)

	a := &app{
		cfg:    cfg,
		log:    log,
		store:  store,
		clinic: api.New(client),
		in:     in,
		out:    out,
		errOut: errOut,
		tick:   time.Second,
	}
	err = a.dispatch(ctx, rest[0], rest[1:])
	if cfg.Metrics {
		dumpMetrics(errOut, reg)
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		usage(errOut)
		return 2
	default:
		var se *screenError
		if errors.As(err, &se) && se.cause != nil {
			log.Debug("command failed", zap.String("cmd", rest[0]), zap.Error(se.cause))
		}
		fmt.Fprintln(errOut, err)
		return 1
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Fprintf(a.out, "kc %s (%s)\n", version, buildDate)
		return nil
	case "lang":
		return a.cmdLang(ctx, args)
	case "token":
		return a.cmdToken(ctx, args)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "labels":
		return a.cmdLabels(ctx)
	case "register":
		return a.cmdRegister(ctx, args)
	case "otp":
		return a.cmdOTP(ctx, args)
	case "verify":
		return a.cmdVerify(ctx, args)
	case "add-kid":
		return a.cmdAddKid(ctx, args)
	case "notifications":
		return a.cmdNotifications(ctx)
	case "read":
		return a.cmdRead(ctx, args)
	case "vaccinations":
		return a.cmdVaccinations(ctx, args)
	case "precautions":
		return a.cmdPrecautions(ctx, args)
	default:
		return errUsage
	}
}

// openPrefs opens the configured backend. Durable backends are wrapped so that
// storage failures only degrade persistence.
func openPrefs(ctx context.Context, cfg config.Config, log *zap.Logger) (prefs.Store, func(), error) {
	switch cfg.Prefs {
	case config.PrefsMemory:
		return prefs.NewMemory(), func() {}, nil
	case config.PrefsRedis:
		s, err := redisstore.New(ctx, cfg.PrefsDSN)
		if err != nil {
			return nil, nil, err
		}
		return prefs.NewResilient(s, log), func() { _ = s.Close() }, nil
	case config.PrefsPostgres:
		if err := migrate.Up(ctx, cfg.PrefsDSN, log); err != nil {
			return nil, nil, err
		}
		s, err := pgstore.New(ctx, cfg.PrefsDSN)
		if err != nil {
			return nil, nil, err
		}
		return prefs.NewResilient(s, log), s.Close, nil
	default:
		path := cfg.PrefsDSN
		if path == "" {
			path = config.PrefsPath()
		}
		return prefs.NewResilient(prefs.NewFile(path), log), func() {}, nil
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `kc CLI
Usage:
  kc [-base-url URL] [-timeout D] [-prefs file|memory|redis|postgres] [-prefs-dsn DSN]
     [-log-level L] [-log-format console|json] [-metrics] <cmd> [args]

Commands:
  version
  lang          [-set en|ar|ur]
  token         -set <token> | -clear
  whoami
  labels
  register      -name -email -phone -password [-no-otp]
  otp           [-name -email -phone -password]   (interactive; registration flags enable resend)
  verify        -code <6 digits>
  add-kid       -name -national-id -urn -sex -nationality -insurance -insurance-number -dob
  notifications
  read          -id <notification id>
  vaccinations  -child <id>
  precautions   -child <id>
`)
}

// dumpMetrics prints counters and histogram sample counts in a line-per-series format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		fmt.Fprintln(w, "metrics:", err)
		return
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			series := fmt.Sprintf("%s{%s}", mf.GetName(), strings.Join(labels, ","))
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%.3fs", series, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// language returns the stored language, loaded off the calling goroutine.
func (a *app) language(ctx context.Context) string {
	select {
	case r := <-prefs.GetAsync(ctx, a.store, prefs.KeyLanguage):
		if r.Err != nil || !r.OK {
			return string(i18n.Normalize(prefs.DefaultLanguage))
		}
		return string(i18n.Normalize(r.Value))
	case <-ctx.Done():
		return string(i18n.Normalize(prefs.DefaultLanguage))
	}
}
