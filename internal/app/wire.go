package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"bsort/internal/domain"
	"bsort/internal/render"
	sortersvc "bsort/internal/services/sorter"
	"bsort/internal/sorting"
)

// Wire bundles the renderer, service and logger for the CLI.
type Wire struct {
	Renderer domain.Renderer
	Sorter   *sortersvc.Service
	Log      *logrus.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	// Logs go to stderr so the sorted output stays clean.
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	r := render.NewWriter(out)
	svc := sortersvc.New(sorting.Sorter{}, r, log)

	return &Wire{
		Renderer: r,
		Sorter:   svc,
		Log:      log,
	}
}
