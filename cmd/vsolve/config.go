package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/thalesfsp/vsolve"
)

// fileConfig is the shape of the YAML configuration file. Every key can also
// be set through a VSOLVE_ environment variable, e.g. VSOLVE_MAX_ITERATIONS.
type fileConfig struct {
	Verbosity              int     `mapstructure:"verbosity"`
	LogLevel               string  `mapstructure:"log_level"`
	Progress               bool    `mapstructure:"progress"`
	MaxIterations          int     `mapstructure:"max_iterations"`
	MaxRetries             int     `mapstructure:"max_retries"`
	ShrinkFactor           float64 `mapstructure:"shrink_factor"`
	MaxCondition           float64 `mapstructure:"max_condition"`
	Trim                   bool    `mapstructure:"trim"`
	SplitOnTrim            bool    `mapstructure:"split_on_trim"`
	InflationSteps         int     `mapstructure:"inflation_steps"`
	MaxRefinements         int     `mapstructure:"max_refinements"`
	MaxMergeIterations     int     `mapstructure:"max_merge_iterations"`
	LinearProgramming      bool    `mapstructure:"linear_programming"`
	MinWidth               float64 `mapstructure:"min_width"`
	WidthLimit             float64 `mapstructure:"width_limit"`
	MaxSubdivisions        int     `mapstructure:"max_subdivisions"`
	Unify                  bool    `mapstructure:"unify"`
	LocalSearch            bool    `mapstructure:"local_search"`
	LocalSearchEvaluations int     `mapstructure:"local_search_evaluations"`
	Box                    string  `mapstructure:"box"`
}

func setDefaults(v *viper.Viper) {
	d := vsolve.DefaultConfig()

	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("log_level", "info")
	v.SetDefault("progress", false)
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("max_retries", d.MaxRetries)
	v.SetDefault("shrink_factor", d.ShrinkFactor)
	v.SetDefault("max_condition", d.MaxCondition)
	v.SetDefault("trim", d.Trim)
	v.SetDefault("split_on_trim", d.SplitOnTrim)
	v.SetDefault("inflation_steps", d.InflationSteps)
	v.SetDefault("max_refinements", d.MaxRefinements)
	v.SetDefault("max_merge_iterations", d.MaxMergeIterations)
	v.SetDefault("linear_programming", d.LinearProgramming)
	v.SetDefault("min_width", d.MinWidth)
	v.SetDefault("width_limit", d.WidthLimit)
	v.SetDefault("max_subdivisions", d.MaxSubdivisions)
	v.SetDefault("unify", d.Unify)
	v.SetDefault("local_search", d.LocalSearch)
	v.SetDefault("local_search_evaluations", d.LocalSearchEvaluations)
	v.SetDefault("box", "")
}

// loadConfig reads the optional file at path, then the environment.
func loadConfig(v *viper.Viper, path string) (fileConfig, error) {
	setDefaults(v)

	v.SetEnvPrefix("VSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return fc, nil
}

func (fc fileConfig) solverConfig(logger *logrus.Logger) vsolve.Config {
	c := vsolve.DefaultConfig()
	c.Verbosity = fc.Verbosity
	c.Logger = logger
	c.MaxIterations = fc.MaxIterations
	c.MaxRetries = fc.MaxRetries
	c.ShrinkFactor = fc.ShrinkFactor
	c.MaxCondition = fc.MaxCondition
	c.Trim = fc.Trim
	c.SplitOnTrim = fc.SplitOnTrim
	c.InflationSteps = fc.InflationSteps
	c.MaxRefinements = fc.MaxRefinements
	c.MaxMergeIterations = fc.MaxMergeIterations
	c.LinearProgramming = fc.LinearProgramming
	c.MinWidth = fc.MinWidth
	c.WidthLimit = fc.WidthLimit
	c.MaxSubdivisions = fc.MaxSubdivisions
	c.Unify = fc.Unify
	c.LocalSearch = fc.LocalSearch
	c.LocalSearchEvaluations = fc.LocalSearchEvaluations
	return c
}

func setupLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// parseBox reads "lo:hi,lo:hi,...".
func parseBox(s string) (vsolve.Box, error) {
	parts := strings.Split(s, ",")
	ranges := make([]vsolve.Range[float64], len(parts))
	for i, p := range parts {
		lo, hi, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("coordinate %d %q: want lo:hi: %w", i, p, vsolve.ErrInvalidBox)
		}
		l, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		ranges[i] = vsolve.Range[float64]{Min: l, Max: h}
	}
	return vsolve.NewBox(ranges...)
}
