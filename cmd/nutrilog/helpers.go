package nutrilog

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/saadjs/nutrilog/internal/app"
	"github.com/saadjs/nutrilog/internal/logstore"
	"github.com/saadjs/nutrilog/internal/service"
)

type runtimeConfig struct {
	app.Config
	backend   app.Backend
	path      string
	loc       *time.Location
	weekStart time.Weekday
}

// loadConfig reads the environment and applies the persistent flags on top.
func loadConfig() (runtimeConfig, error) {
	cfg, err := app.ParseEnv()
	if err != nil {
		return runtimeConfig{}, err
	}
	if strings.TrimSpace(storePath) != "" {
		cfg.StorePath = storePath
	}
	if strings.TrimSpace(backendName) != "" {
		cfg.Backend = backendName
	}
	rc := runtimeConfig{Config: cfg}
	if rc.backend, err = app.ParseBackend(cfg.Backend); err != nil {
		return runtimeConfig{}, err
	}
	if rc.path, err = cfg.ResolveStorePath(); err != nil {
		return runtimeConfig{}, err
	}
	if rc.loc, err = cfg.Location(); err != nil {
		return runtimeConfig{}, err
	}
	if rc.weekStart, err = cfg.FirstWeekday(); err != nil {
		return runtimeConfig{}, err
	}
	return rc, nil
}

// session is what a command body gets: a ready service and a localized
// printer bound to the command's output.
type session struct {
	ctx context.Context
	svc *service.Service
	cfg runtimeConfig
	out io.Writer
	p   *message.Printer
}

func (s *session) printf(format string, args ...any) {
	s.p.Fprintf(s.out, format, args...)
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func withService(cmd *cobra.Command, run func(*session) error) error {
	rc, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := app.OpenStore(rc.backend, rc.path)
	if err != nil {
		return err
	}
	defer store.Close()

	logger := log.New(cmd.ErrOrStderr(), "nutrilog: ", 0)
	logs := logstore.New(store, logstore.WithLogger(logger))
	svc := service.New(logs, service.Options{Location: rc.loc, WeekStart: rc.weekStart})
	return run(&session{
		ctx: commandContext(cmd),
		svc: svc,
		cfg: rc,
		out: cmd.OutOrStdout(),
		p:   message.NewPrinter(rc.Language()),
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseDay(raw string, s *session) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.svc.Today(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, s.cfg.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", raw)
	}
	return t, nil
}

// parseDateTimeOrNow returns the zero time when neither flag is set so the
// service stamps the entry itself.
func parseDateTimeOrNow(date, timeStr string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Time{}, nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		timeStr = "12:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func optionalFloat(cmd *cobra.Command, flag string, value float64) *float64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}
