package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BSTDEMO"

	keyCount    = "count"
	keyMin      = "min"
	keyMax      = "max"
	keySeed     = "seed"
	keyInsert   = "insert"
	keyLogLevel = "log-level"
)

type demoConfig struct {
	Count    int
	Min, Max int
	Seed     int64
	Insert   []int
	LogLevel string
}

func newRootCmd(log *zerolog.Logger) *cobra.Command {
	config := &demoConfig{}
	cmd := &cobra.Command{
		Use:           "bstdemo",
		Short:         "Build, unbalance and rebalance a binary search tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd); err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
			lvl, err := zerolog.ParseLevel(config.LogLevel)
			if err != nil {
				return fmt.Errorf("parsing log level: %w", err)
			}
			*log = log.Level(lvl)
			return config.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), log, config)
		},
	}
	cmd.Flags().IntVar(&config.Count, keyCount, 15, "number of random values to build the tree from")
	cmd.Flags().IntVar(&config.Min, keyMin, 1, "smallest random value")
	cmd.Flags().IntVar(&config.Max, keyMax, 100, "largest random value")
	cmd.Flags().Int64Var(&config.Seed, keySeed, 0, "random seed, 0 seeds from the clock")
	cmd.Flags().IntSliceVar(&config.Insert, keyInsert, []int{150, 125, 200, 155}, "values inserted to unbalance the tree")
	cmd.Flags().StringVar(&config.LogLevel, keyLogLevel, "info", "log level (debug, info, warn, error)")
	return cmd
}

func (c *demoConfig) validate() error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative: %d", keyCount, c.Count))
	}
	if c.Max < c.Min {
		errs = append(errs, fmt.Errorf("%s %d is less than %s %d", keyMax, c.Max, keyMin, c.Min))
	}
	return errors.Join(errs...)
}

// initializeConfig binds every flag that wasn't set on the command line to
// its BSTDEMO_ prefixed environment variable.
func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return bindFlags(cmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
			}
		}
	})
	return errors.Join(bindFlagErr...)
}

func runDemo(out io.Writer, log *zerolog.Logger, config *demoConfig) error {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	vs := make([]int, config.Count)
	for i := range vs {
		vs[i] = config.Min + r.Intn(config.Max-config.Min+1)
	}
	log.Debug().Int64("seed", seed).Ints("values", vs).Msg("generated values")

	tree := Trees.New(vs...)
	if err := report(out, "New tree:", tree); err != nil {
		return err
	}
	log.Info().Int("size", tree.Size()).Bool("balanced", tree.IsBalanced()).Msg("tree built")

	for _, v := range config.Insert {
		if !tree.Insert(v) {
			log.Debug().Int("value", v).Msg("value already present")
		}
	}
	if err := report(out, "After inserting "+fmt.Sprint(config.Insert)+":", tree); err != nil {
		return err
	}
	log.Info().Int("size", tree.Size()).Bool("balanced", tree.IsBalanced()).Msg("values inserted")

	tree.Rebalance()
	if err := report(out, "Rebalanced tree:", tree); err != nil {
		return err
	}
	if !tree.IsBalanced() && tree.Size() > 0 {
		return errors.New("tree is not balanced after rebalance")
	}
	log.Info().Int("size", tree.Size()).Msg("tree rebalanced")
	return nil
}

func report(out io.Writer, title string, tree *Trees.Tree[int]) error {
	if _, err := fmt.Fprintln(out, title); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tree.Fprint(out); err != nil {
		return fmt.Errorf("printing tree: %w", err)
	}
	_, err := fmt.Fprintf(out, "Balanced: %v\nLevel order: %v\nIn order: %v\nPre order: %v\nPost order: %v\n\n",
		tree.IsBalanced(), tree.LevelOrder(), tree.InOrder(), tree.PreOrder(), tree.PostOrder())
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
