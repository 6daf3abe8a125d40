package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/validator"
)

var (
	solverKind string

	solveCmd = &cobra.Command{
		Use:   "solve [puzzle.json]",
		Short: "Solve a puzzle file and print the grid",
		Long:  `Reads a JSON puzzle file of the form {"rows": [[...]], "columns": [[...]]} and prints the solved grid, one glyph per cell (# filled, . empty).`,
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	validateCmd = &cobra.Command{
		Use:   "validate [puzzle.json]",
		Short: "Check a puzzle file for structural problems without solving it",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
)

func init() {
	solveCmd.Flags().StringVar(&solverKind, "solver", "propagate", "solver to use: propagate|backtrack")
}

func readPuzzle(path string) (*domain.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p domain.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	p, err := readPuzzle(args[0])
	if err != nil {
		return err
	}
	if err := reportConflicts(cmd, p); err != nil {
		return err
	}
	s := pickSolver(solverKind)
	g, st, err := s.Solve(cmd.Context(), p)
	if err != nil {
		return err
	}
	logger.Debug("solved", "cycles", st.Cycles, "guesses", st.Guesses, "dur", st.Duration)
	fmt.Fprintln(cmd.OutOrStdout(), g.String())
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := readPuzzle(args[0])
	if err != nil {
		return err
	}
	if err := reportConflicts(cmd, p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %dx%d puzzle\n", p.Height(), p.Width())
	return nil
}

func reportConflicts(cmd *cobra.Command, p *domain.Puzzle) error {
	ok, conflicts, err := validator.New().Validate(cmd.Context(), p)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	for _, c := range conflicts {
		if c.Index < 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %s\n", c.Reason)
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid %s %d: %s\n", c.Axis, c.Index, c.Reason)
	}
	return fmt.Errorf("puzzle has %d validation problem(s)", len(conflicts))
}
