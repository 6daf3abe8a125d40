package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/generator"
	"svw.info/nonogram/internal/hint"
	"svw.info/nonogram/internal/infrastructure/storage"
	"svw.info/nonogram/internal/ports"
	"svw.info/nonogram/internal/solver"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "nonogram",
		Short:         "Solve, validate, and generate nonogram puzzles",
		Long:          `A nonogram (picross) solver based on candidate enumeration and constraint propagation between rows and columns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// pickSolver maps the --solver flag to an implementation. Propagation is the
// default; backtracking additionally resolves ambiguous puzzles by guessing.
func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewPropagationSolver()
	}
}

// newService wires providers into the use-case facade.
func newService(s ports.Solver, persist string) *usecase.Service {
	g := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
	v := validator.New()
	st := storage.NewFS(persist)
	hin := hint.NewForced()
	return usecase.NewService(s, g, v, hin, st)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(solveCmd, validateCmd, generateCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		newLogger().Error("command failed", "err", err)
		os.Exit(1)
	}
}
