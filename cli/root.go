package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sciencecalc/metrics"
)

// Config holds the options shared by every subcommand.
type Config struct {
	OutDir      string // directory for charts and JSON results
	Charts      bool   // render PNG charts
	JSON        bool   // write results as JSON
	MetricsFile string // Prometheus text file; empty disables metrics
	Verbose     bool
}

// env is the state a command run needs once flags are parsed.
type env struct {
	cfg     Config
	log     *slog.Logger
	metrics metrics.Collector
	runID   uuid.UUID
}

func (e *env) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if e.cfg.Verbose {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if e.cfg.MetricsFile != "" {
		e.metrics = metrics.NewCollector()
	} else {
		e.metrics = metrics.NewNoopCollector()
	}
	e.runID = uuid.New()

	if e.cfg.Charts || e.cfg.JSON {
		if err := os.MkdirAll(e.cfg.OutDir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// run wraps a calculator so every invocation is timed, counted and logged
// the same way.
func (e *env) run(calculator string, fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		e.log.Debug("calculation started", "calculator", calculator, "run_id", e.runID)

		err := fn(cmd)
		status := "success"
		if err != nil {
			status = "error"
			kind := ClassifyError(err)
			e.metrics.RecordError(calculator, kind)
			e.log.Error("calculation failed", "calculator", calculator, "error_type", kind, "error", err)
		}
		elapsed := time.Since(start)
		e.metrics.RecordCalculation(calculator, status, elapsed)

		if e.cfg.MetricsFile != "" {
			if werr := e.metrics.WriteTextfile(e.cfg.MetricsFile); werr != nil {
				e.log.Error("write metrics", "path", e.cfg.MetricsFile, "error", werr)
				if err == nil {
					err = werr
				}
			} else {
				e.log.Debug("metrics written", "path", e.cfg.MetricsFile)
			}
		}
		e.log.Debug("calculation finished", "calculator", calculator, "status", status, "elapsed", elapsed)
		if err != nil {
			return loggedError{err}
		}
		return nil
	}
}

// loggedError marks an error already reported through the logger.
type loggedError struct {
	error
}

func (e loggedError) Unwrap() error { return e.error }

type saver interface {
	Save(path string) error
}

// saveChart saves c as <out>/<name>.png when charts are enabled.
func (e *env) saveChart(name string, c saver) error {
	if !e.cfg.Charts {
		return nil
	}
	path := filepath.Join(e.cfg.OutDir, name+".png")
	if err := c.Save(path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	e.metrics.RecordOutput("chart")
	e.log.Info("chart saved", "path", path)
	return nil
}

type document struct {
	RunID     string    `json:"run_id"`
	Command   string    `json:"command"`
	Generated time.Time `json:"generated_at"`
	Result    any       `json:"result"`
}

// saveJSON saves v as <out>/<name>.json when JSON output is enabled.
func (e *env) saveJSON(name string, v any) error {
	if !e.cfg.JSON {
		return nil
	}
	data, err := json.MarshalIndent(document{
		RunID:     e.runID.String(),
		Command:   name,
		Generated: time.Now().UTC(),
		Result:    v,
	}, "", " ")
	if err != nil {
		return err
	}
	path := filepath.Join(e.cfg.OutDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	e.metrics.RecordOutput("json")
	e.log.Info("result saved", "path", path)
	return nil
}

// NewRootCommand builds the sciencecalc command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "sciencecalc",
		Short:         "Scientific calculators built on one exponential decay model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.cfg.OutDir, "out", ".", "directory for charts and JSON results")
	flags.BoolVar(&e.cfg.Charts, "charts", true, "render PNG charts")
	flags.BoolVar(&e.cfg.JSON, "json", false, "write results as JSON")
	flags.StringVar(&e.cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flags.BoolVarP(&e.cfg.Verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		isotopeCmd(e),
		shieldCmd(e),
		nuclearCmd(e),
		populationCmd(e),
		goldCmd(e),
		planckCmd(e),
		worldlineCmd(e),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return executeRoot(NewRootCommand())
}

// executeRoot runs root and prints errors the calculators did not log
// themselves, such as bad flags or unknown commands.
func executeRoot(root *cobra.Command) error {
	err := root.Execute()
	var logged loggedError
	if err != nil && !errors.As(err, &logged) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}
