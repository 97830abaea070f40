package main

import (
	"strings"

	"github.com/grindlemire/borealis"
	"github.com/spf13/cobra"
)

var crashCmd = &cobra.Command{
	Use:   "crash <message>",
	Short: "Preview the crash screen",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCrash,
}

func runCrash(cmd *cobra.Command, args []string) error {
	_, st, err := loadStyle()
	if err != nil {
		return err
	}
	m, err := newPreviewModel(st)
	if err != nil {
		return err
	}
	m.app.PushView(borealis.NewCrashFrame(strings.Join(args, " ")))
	return runProgram(m)
}
