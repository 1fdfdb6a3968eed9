package main

import (
	"flag"
	"log"
	"os"

	"github.com/TheBellman/timeutility/internal/app"
	"github.com/TheBellman/timeutility/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "config file path (optional)")
	from := flag.String("from", "", "range start, RFC3339 or unix seconds; defaults to one unit ago")
	to := flag.String("to", "", "range end, RFC3339 or unix seconds; defaults to now")
	unit := flag.String("unit", "", "tick unit: millis, seconds, minutes, hours, days")
	format := flag.String("format", "", "output format: text or json")
	limit := flag.Int("limit", 0, "maximum number of ticks to emit")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	a := app.New(cfg)
	if err := a.Run(app.RunParams{
		From:   *from,
		To:     *to,
		Unit:   *unit,
		Format: *format,
		Limit:  *limit,
	}); err != nil {
		log.Printf("tick error: %v", err)
		os.Exit(1)
	}
}
