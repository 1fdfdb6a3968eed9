package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/TheBellman/timeutility/internal/usecase"
	"github.com/TheBellman/timeutility/pkg/config"
	applogger "github.com/TheBellman/timeutility/pkg/logger"
)

// App encapsulates the one-shot CLI lifecycle: config, logging, enumeration,
// rendering.
type App struct {
	cfg *config.Config
	uc  *usecase.TicksUseCase
	out io.Writer
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
		uc:  usecase.NewTicksUseCase(),
		out: os.Stdout,
	}
}

// SetOutput redirects rendered output, mainly for tests.
func (a *App) SetOutput(w io.Writer) { a.out = w }

// RunParams carries the flag values; empty fields fall back to the config.
type RunParams struct {
	From   string
	To     string
	Unit   string
	Format string
	Limit  int
}

// Run resolves the range once, logs what was resolved, and renders the ticks.
func (a *App) Run(p RunParams) error {
	l, err := applogger.New(&applogger.Config{
		Level:      a.cfg.Log.Level,
		Format:     a.cfg.Log.Format,
		Output:     a.cfg.Log.Output,
		TimeFormat: a.cfg.Log.TimeFormat,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	// flag values win over config
	if p.Unit == "" {
		p.Unit = a.cfg.Range.Unit
	}
	if p.Format == "" {
		p.Format = a.cfg.Output.Format
	}
	if p.Limit <= 0 {
		p.Limit = a.cfg.Output.Limit
	}

	res, err := a.uc.GetTicks(usecase.GetTicksParams{
		From:  p.From,
		To:    p.To,
		Unit:  p.Unit,
		Limit: p.Limit,
	})
	if err != nil {
		l.Error("resolve range", applogger.Error(err))
		return err
	}

	l.Info("range resolved",
		applogger.Time("from", res.From),
		applogger.Time("to", res.To),
		applogger.String("unit", res.Unit),
		applogger.Int("count", res.Count),
	)

	return a.render(res, p.Format)
}

func (a *App) render(res *usecase.GetTicksResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	default:
		for _, tick := range res.Ticks {
			if _, err := fmt.Fprintln(a.out, tick.Format(time.RFC3339)); err != nil {
				return fmt.Errorf("write tick: %w", err)
			}
		}
	}
	return nil
}
