package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/grindlemire/borealis"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Lay out the demo screen and print the view tree",
	Args:  cobra.NoArgs,
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().Int("width", surfaceWidth, "surface width")
	layoutCmd.Flags().Int("height", surfaceHeight, "surface height")
}

func runLayout(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	_, st, err := loadStyle()
	if err != nil {
		return err
	}
	app, err := borealis.NewApp(borealis.WithStyleStore(st), borealis.WithSize(width, height))
	if err != nil {
		return err
	}
	app.PushView(newDemoFrame())
	dumpTree(cmd.OutOrStdout(), app.Top(), app.Focused(), 0)
	return nil
}

// dumpTree writes one line per view: its type, kind, bounds and, for rows,
// whether the top separator is drawn. The focused view is starred.
func dumpTree(w io.Writer, v, focused borealis.View, depth int) {
	b := v.Bounds()
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&sb, "%s %s (%d,%d %dx%d)", typeName(v), v.Kind(), b.X, b.Y, b.Width, b.Height)
	if r, ok := v.(borealis.Row); ok && v.Kind() == borealis.KindRow {
		fmt.Fprintf(&sb, " sep=%t", r.DrawTopSeparator())
	}
	if v == focused {
		sb.WriteString(" *")
	}
	fmt.Fprintln(w, sb.String())
	for _, c := range v.Children() {
		dumpTree(w, c, focused, depth+1)
	}
}

func typeName(v borealis.View) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
