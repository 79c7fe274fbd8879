package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/beam"
	"github.com/katalvlaran/gridsearch/crucible"
	"github.com/katalvlaran/gridsearch/garden"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/pipes"
	"github.com/katalvlaran/gridsearch/search"
)

// visitCounter returns a search hook that counts expansions and the final
// count accessor. It never aborts the search.
func visitCounter[S comparable]() (search.Option, func() int) {
	n := 0
	return search.WithOnVisit(func(S, int) error {
		n++
		return nil
	}), func() int { return n }
}

func newLoopCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "loop [file]",
		Short: "Farthest loop distance and enclosed cell count of a pipe diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p := newProgress(logger)
			l, err := pipes.Parse(text)
			if err != nil {
				return err
			}
			logger.Debug("parsed pipe diagram", "width", l.Width(), "height", l.Height(), "start", l.Start(), "resolved", l.Pipe(l.Start()))

			far, err := l.Farthest(search.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			inside, err := l.EnclosedCount(search.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			p.done("loop solved")
			printAnswers(cmd, far, inside)
			return nil
		},
	}
}

func newDigCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dig [file]",
		Short: "Lagoon size of a dig plan: trench cells plus the cells they enclose",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p := newProgress(logger)
			l, err := pipes.FromDigPlan(text)
			if err != nil {
				return err
			}
			logger.Debug("dug trench", "width", l.Width(), "height", l.Height(), "origin", l.Start())

			area, err := l.Area(search.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			p.done("dig solved")
			printAnswers(cmd, area)
			return nil
		},
	}
}

func newBeamCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "beam [file]",
		Short: "Energized cells from the top-left corner and from the best edge entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p := newProgress(logger)
			f, err := beam.Parse(text)
			if err != nil {
				return err
			}
			first, err := f.Energized(beam.Ray{Heading: gridgraph.East}, search.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			best, at, err := f.MaxEnergized(cmd.Context(), opts.cfg.Beam.Workers)
			if err != nil {
				return err
			}
			logger.Debug("best entry", "pos", at.Pos, "heading", at.Heading, "entries", len(f.Entries()))
			p.done("beam solved")
			printAnswers(cmd, first, best)
			return nil
		},
	}
}

func newCrucibleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "crucible [file]",
		Short: "Least heat loss for a normal and an ultra crucible",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			p := newProgress(logger)
			c, err := crucible.Parse(text)
			if err != nil {
				return err
			}

			answers := make([]int, 0, 2)
			for _, rc := range []struct {
				name  string
				rules crucible.Rules
			}{
				{"normal", opts.cfg.Crucible.Normal.Rules()},
				{"ultra", opts.cfg.Crucible.Ultra.Rules()},
			} {
				count, visited := visitCounter[crucible.State]()
				res, err := c.MinHeatLoss(rc.rules, search.WithContext(cmd.Context()), count)
				if err != nil {
					return err
				}
				if !res.Reachable {
					return fmt.Errorf("crucible %s: target unreachable with %+v", rc.name, rc.rules)
				}
				logger.Debug("route found", "cart", rc.name, "cost", res.Cost, "settled", visited())
				answers = append(answers, res.Cost)
			}
			p.done("crucible solved")
			printAnswers(cmd, answers...)
			return nil
		},
	}
}

func newGardenCmd(opts *options) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "garden [file]",
		Short: "Plots reachable in exactly N steps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("steps") {
				steps = opts.cfg.Garden.Steps
			}
			p := newProgress(logger)
			g, err := garden.Parse(text)
			if err != nil {
				return err
			}
			n, err := g.Reachable(steps, search.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			p.done("garden solved", "steps", steps)
			printAnswers(cmd, n)
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "step budget (default from config)")
	return cmd
}

// printAnswers writes one "part N: value" line per answer to stdout.
func printAnswers(cmd *cobra.Command, answers ...int) {
	for i, a := range answers {
		fmt.Fprintf(cmd.OutOrStdout(), "part %d: %d\n", i+1, a)
	}
}
