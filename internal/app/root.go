package app

import (
	"os"
	"strings"
	"sync"

	"github.com/mordilloSan/go-consolelog/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CONSOLELOG"

func newRootCommand(l *logger.Logger) (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "go-consolelog [message...]",
		Short:         "Emit log lines through the console logger",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `go-consolelog writes message lines at the chosen level from one or
more goroutines. It is a smoke tool for the console logger: every line must
come out whole, whatever the concurrency.

Flags may also be given as CONSOLELOG_LEVEL, CONSOLELOG_GOROUTINES and
CONSOLELOG_COUNT environment variables.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args)
			if err != nil {
				return err
			}
			burst(l, cfg)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.String("level", "info", "Level of the emitted lines (trace, debug, info, warn, error, fatal)")
	fs.Int("goroutines", 1, "Number of goroutines logging concurrently")
	fs.Int("count", 1, "Number of lines per goroutine")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	cmd.AddCommand(newLevelsCommand(l))
	return cmd, nil
}

func newLevelsCommand(l *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print one sample line per level",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, level := range logger.AllLevels() {
				l.Output(1, level, "sample %s line", strings.ToLower(level.String()))
			}
		},
	}
}

func burst(l *logger.Logger, cfg *Config) {
	level := cfg.level()

	var wg sync.WaitGroup
	wg.Add(cfg.Goroutines)
	for i := range cfg.Goroutines {
		go func(id int) {
			defer wg.Done()
			for n := range cfg.Count {
				l.Output(1, level, "%s worker=%d seq=%d", cfg.Message, id, n)
			}
		}(i)
	}
	wg.Wait()
}

// Execute runs the root command against the default logger.
// This is called by main.main().
func Execute() {
	cmd, err := newRootCommand(logger.Default())
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
