package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/naveenspark/fitflow/internal/config"
	"github.com/naveenspark/fitflow/internal/logging"
	"github.com/naveenspark/fitflow/internal/metrics"
	"github.com/naveenspark/fitflow/internal/session"
	"github.com/naveenspark/fitflow/internal/tui"
	"github.com/naveenspark/fitflow/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Fprintln(stdout, "fitflow "+version)
			return nil
		case "help", "--help", "-h":
			printHelp(stdout)
			return nil
		}
	}

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	goal := session.NewWeeklyGoal(cfg.Goal.Start)

	if len(args) > 0 {
		switch args[0] {
		case "catalog":
			printCatalog(stdout, catalog)
			return nil
		case "stats":
			printStats(stdout, domain.DefaultMonthlyStats, goal)
			return nil
		default:
			return fmt.Errorf("unknown command %q (see fitflow help)", args[0])
		}
	}

	return runTUI(cfg, catalog, goal)
}

func runTUI(cfg *config.Config, catalog *domain.Catalog, goal session.WeeklyGoal) error {
	closer, err := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close() //nolint:errcheck

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewManager("fitflow", reg)
	m.GaugeWeeklyGoal.Set(goal.Percent())

	if cfg.Metrics.Addr != "" {
		srv, err := metrics.Listen(cfg.Metrics.Addr, reg)
		if err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
		go srv.Serve()
		defer srv.Shutdown()
		logrus.WithField("addr", srv.Addr()).Info("metrics server listening")
	}

	logrus.WithFields(logrus.Fields{
		"version":  version,
		"workouts": catalog.Len(),
		"theme":    cfg.UI.Theme,
		"goal":     goal.String(),
	}).Info("fitflow starting")

	app := tui.NewApp(catalog, tui.Options{
		Theme:   cfg.UI.Theme,
		Goal:    goal,
		Metrics: m,
		Logger:  logrus.StandardLogger(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	logrus.Info("fitflow exited")
	return nil
}
