package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/applemath/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "applemath",
	Short: "Multiplication practice for kids",
	Long:  "AppleMath, a terminal quiz that drills the 1×1 to 9×9 multiplication facts until every one is mastered.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("name", "", "Learner name (overrides "+config.EnvName+")")
	rootCmd.PersistentFlags().String("mode", "", "Quiz mode: classic or endless (overrides "+config.EnvMode+")")
	rootCmd.PersistentFlags().Int("max-questions", 0, "Questions per classic session (overrides "+config.EnvMaxQuestions+")")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for questions, 0 for time-based (overrides "+config.EnvSeed+")")
	rootCmd.PersistentFlags().String("debug-log", "", "Write diagnostics to this file (overrides "+config.EnvDebugLog+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the settings from flags (highest priority), then the
// environment and .env file, then defaults. askName reports whether the
// learner name was left at its default and should be asked for.
func resolveConfig(cmd *cobra.Command) (cfg config.Config, askName bool, err error) {
	cfg, err = config.Load(config.DefaultEnvFile)
	if err != nil {
		return config.Config{}, false, err
	}
	askName = os.Getenv(config.EnvName) == ""

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.LearnerName, _ = flags.GetString("name")
		askName = false
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("max-questions") {
		cfg.MaxQuestions, _ = flags.GetInt("max-questions")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("debug-log") {
		cfg.DebugLog, _ = flags.GetString("debug-log")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, fmt.Errorf("config: %w", err)
	}
	return cfg, askName, nil
}
