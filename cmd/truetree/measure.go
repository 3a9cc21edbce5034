package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/g-m-twostay/truetree/Trees"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errInvariantBroken = errors.New("tree invariant broken")

// heightBound is the worst case height of an AVL tree holding n values.
func heightBound(n uint) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}

type stats struct {
	Steps  int
	Count  uint
	Height uint
	Mean   float64 // mean of height/bound over the steps
	StdDev float64
}

func newMeasureCmd(base *baseConfiguration) *cobra.Command {
	var (
		configPath string
		flags      measureConfig
	)
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Grow a tree with random inserts and removals and report its height per step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadMeasureConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("size") {
				config.Size = flags.Size
			}
			if cmd.Flags().Changed("steps") {
				config.Steps = flags.Steps
			}
			if cmd.Flags().Changed("seed") {
				config.Seed = flags.Seed
			}
			if cmd.Flags().Changed("remove-ratio") {
				config.RemoveRatio = flags.RemoveRatio
			}
			if err := config.validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			s, err := measure(config, base.log)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "steps: %d\ncount: %d\nheight: %d\nmean height/bound: %f\nstddev: %f\n",
				s.Steps, s.Count, s.Height, s.Mean, s.StdDev)
			return err
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML measure profile")
	cmd.Flags().IntVar(&flags.Size, "size", defaultMeasureConfig.Size, "values inserted per step")
	cmd.Flags().IntVar(&flags.Steps, "steps", defaultMeasureConfig.Steps, "number of steps")
	cmd.Flags().Int64Var(&flags.Seed, "seed", defaultMeasureConfig.Seed, "random seed")
	cmd.Flags().Float64Var(&flags.RemoveRatio, "remove-ratio", defaultMeasureConfig.RemoveRatio, "share of each step's insertions removed again")
	return cmd
}

// measure runs config.Steps rounds of inserting config.Size random values and
// removing a config.RemoveRatio share of them, checking the tree after each round.
func measure(config measureConfig, log zerolog.Logger) (stats, error) {
	rg := rand.New(rand.NewSource(config.Seed))
	tree := Trees.New[Trees.Ordered[int]]()
	ratios := make([]float64, 0, config.Steps)
	added := make([]int, config.Size)
	rmvN := int(float64(config.Size) * config.RemoveRatio)

	for step := range config.Steps {
		for i := range added {
			added[i] = rg.Int()
			tree.Insert(Trees.Wrap(added[i]))
		}
		rg.Shuffle(len(added), func(i, j int) { added[i], added[j] = added[j], added[i] })
		for _, v := range added[:rmvN] {
			if _, err := tree.Remove(Trees.Wrap(v)); err != nil {
				return stats{}, fmt.Errorf("step %d: %w", step, err)
			}
		}

		n, h := tree.Count(), tree.Height()
		bound := heightBound(n)
		ratio := float64(h) / bound
		balanced, correct := tree.IsBalanced(), tree.IsCorrect()
		log.Debug().Int("step", step).Uint("n", n).Uint("height", h).Uint("depth", tree.Depth()).
			Uint("width", tree.Width()).Float64("bound", bound).Float64("ratio", ratio).
			Bool("balanced", balanced).Bool("correct", correct).Msg("measured")
		if !balanced || !correct || float64(h) > bound {
			log.Error().Int("step", step).Bool("balanced", balanced).Bool("correct", correct).Uint("height", h).Msg("invariant broken")
			return stats{}, fmt.Errorf("step %d: %w", step, errInvariantBroken)
		}
		ratios = append(ratios, ratio)
	}

	var sum float64
	for _, r := range ratios {
		sum += r
	}
	avg := sum / float64(len(ratios))
	sum = 0
	for _, r := range ratios {
		d := r - avg
		sum += d * d
	}
	s := stats{
		Steps:  len(ratios),
		Count:  tree.Count(),
		Height: tree.Height(),
		Mean:   avg,
		StdDev: math.Sqrt(sum / float64(len(ratios))),
	}
	log.Info().Int("steps", s.Steps).Uint("n", s.Count).Float64("mean", s.Mean).Float64("stddev", s.StdDev).Msg("measure done")
	return s, nil
}
