// Command vsolve runs the verified searches on the problems of the
// catalogue and prints the results as YAML.
//
//	vsolve problems
//	vsolve allsol circle
//	vsolve minimize two-bumps --config vsolve.yaml
//	VSOLVE_WIDTH_LIMIT=1e-8 vsolve maximize himmelblau --box=-1:1,-1:1
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thalesfsp/vsolve"
	"github.com/thalesfsp/vsolve/problems"
)

// progressEvery is how often progress updates are logged.
const progressEvery = 1000

type app struct {
	v          *viper.Viper
	configPath string
	out        io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "vsolve",
		Short:         "Verified root finding and global optimization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().Int("verbosity", 1, "0 silent, 1 solutions, 2 every box")
	root.PersistentFlags().String("log-level", "info", "logrus level")
	root.PersistentFlags().Bool("progress", false, "log progress updates")
	root.PersistentFlags().String("box", "", "search box lo:hi,lo:hi,... (default: the problem's)")
	root.PersistentFlags().Int("max-iterations", 0, "box budget of the root search, 0 = unlimited")
	root.PersistentFlags().Float64("width-limit", vsolve.DefaultConfig().WidthLimit, "terminal width of the optimizers")

	for _, name := range []string{"verbosity", "log-level", "progress", "box", "max-iterations", "width-limit"} {
		key := flagKey(name)
		if err := a.v.BindPFlag(key, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "problems",
			Short: "List the problem catalogue",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return a.listProblems()
			},
		},
		&cobra.Command{
			Use:   "allsol <problem>",
			Short: "Enclose every root of a system",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.allSolutions(args[0])
			},
		},
		&cobra.Command{
			Use:   "minimize <problem>",
			Short: "Enclose the global minimum of a function",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.optimize(args[0], false)
			},
		},
		&cobra.Command{
			Use:   "maximize <problem>",
			Short: "Enclose the global maximum of a function",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.optimize(args[0], true)
			},
		},
	)
	return root
}

func flagKey(name string) string { return strings.ReplaceAll(name, "-", "_") }

// setup loads the configuration and resolves the problem and its box.
func (a *app) setup(name string) (vsolve.Config, problems.Problem, vsolve.Box, func(), error) {
	fc, err := loadConfig(a.v, a.configPath)
	if err != nil {
		return vsolve.Config{}, problems.Problem{}, nil, nil, err
	}
	logger, err := setupLogger(fc.LogLevel)
	if err != nil {
		return vsolve.Config{}, problems.Problem{}, nil, nil, err
	}
	p, ok := problems.Lookup(name)
	if !ok {
		return vsolve.Config{}, problems.Problem{}, nil, nil, fmt.Errorf("unknown problem %q, see 'vsolve problems'", name)
	}

	box := p.Box()
	if fc.Box != "" {
		if box, err = parseBox(fc.Box); err != nil {
			return vsolve.Config{}, problems.Problem{}, nil, nil, err
		}
	}

	config := fc.solverConfig(logger)
	stop := func() {}
	if fc.Progress {
		stop = watchProgress(&config, logger)
	}
	return config, p, box, stop, nil
}

// watchProgress attaches a progress channel to config and logs every
// progressEvery-th update. The returned func closes the channel.
func watchProgress(config *vsolve.Config, logger logrus.FieldLogger) func() {
	ch := make(chan vsolve.ProgressUpdate, 64)
	done := make(chan struct{})
	config.ProgressChan = ch

	go func() {
		defer close(done)
		for u := range ch {
			if u.CurrentIteration%progressEvery != 0 {
				continue
			}
			logger.WithFields(logrus.Fields{
				"phase":     u.Phase,
				"iteration": u.CurrentIteration,
				"pending":   u.Pending,
				"found":     u.Solutions,
				"best":      u.CurrentBest,
			}).Info("progress")
		}
	}()

	return func() {
		close(ch)
		<-done
	}
}

func (a *app) listProblems() error {
	type entry struct {
		Name        string      `yaml:"name"`
		Kind        string      `yaml:"kind"`
		Description string      `yaml:"description"`
		Box         [][]float64 `yaml:"box,flow"`
	}
	var list []entry
	for _, p := range problems.All() {
		list = append(list, entry{
			Name:        p.Name,
			Kind:        string(p.Kind),
			Description: p.Description,
			Box:         boxReport(p.Box()),
		})
	}
	return a.encode(list)
}

func (a *app) allSolutions(name string) error {
	config, p, box, stop, err := a.setup(name)
	if err != nil {
		return err
	}
	res, err := vsolve.AllSolutions(config, p.System, box)
	stop()
	if err != nil {
		return err
	}
	return a.encode(newRootsReport(p.Name, res))
}

func (a *app) optimize(name string, maximize bool) error {
	config, p, box, stop, err := a.setup(name)
	if err != nil {
		return err
	}
	run := vsolve.Minimize
	if maximize {
		run = vsolve.Maximize
	}
	res, err := run(config, p.System, box)
	stop()
	if err != nil {
		return err
	}
	return a.encode(newOptimumReport(p.Name, maximize, res))
}

func (a *app) encode(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vsolve:", err)
		os.Exit(1)
	}
}
