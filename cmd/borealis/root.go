package main

import (
	"fmt"

	"github.com/grindlemire/borealis"
	"github.com/grindlemire/borealis/internal/debug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "borealis",
	Short: "Console settings UI toolkit",
	Long: `borealis previews and inspects settings screens built from the
borealis view core: lists of toggle, select and input rows inside a
settings frame.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: openDebugLog,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("style", "", "style file layered over the built-in defaults")
	rootCmd.PersistentFlags().String("theme", "", "theme variant (dark or light)")
	rootCmd.PersistentFlags().String("debug-log", "", "append debug records to this file")
	_ = viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("debug_log", rootCmd.PersistentFlags().Lookup("debug-log"))

	rootCmd.AddCommand(previewCmd, layoutCmd, styleCmd, crashCmd)
}

func openDebugLog(cmd *cobra.Command, args []string) error {
	path := viper.GetString("debug_log")
	if path == "" {
		return nil
	}
	if err := debug.Init(path); err != nil {
		return err
	}
	debug.Log("borealis %s: %s", version, cmd.CommandPath())
	return nil
}

// newLoader returns a style loader configured from the global flags.
func newLoader() *borealis.StyleLoader {
	l := borealis.NewStyleLoader()
	if path := viper.GetString("style"); path != "" {
		l.SetConfigFile(path)
	}
	if theme := viper.GetString("theme"); theme != "" {
		l.Set("theme.variant", theme)
	}
	return l
}

// loadStyle loads the store selected by the global flags.
func loadStyle() (*borealis.StyleLoader, *borealis.StyleStore, error) {
	l := newLoader()
	st, err := l.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load style: %w", err)
	}
	return l, st, nil
}
