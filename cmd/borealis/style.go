package main

import (
	"fmt"

	"github.com/grindlemire/borealis"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Inspect the effective style and theme",
}

var styleDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective style and theme as YAML",
	Args:  cobra.NoArgs,
	RunE:  runStyleDump,
}

var styleGetCmd = &cobra.Command{
	Use:   "get <component> <field>",
	Short: "Print a single style value, e.g. get list.item height",
	Args:  cobra.ExactArgs(2),
	RunE:  runStyleGet,
}

func init() {
	styleCmd.AddCommand(styleDumpCmd, styleGetCmd)
}

type styleDocument struct {
	borealis.Style `yaml:",inline"`
	Theme          themeDocument `yaml:"theme"`
}

type themeDocument struct {
	Variant        string `yaml:"variant"`
	borealis.Theme `yaml:",inline"`
}

func runStyleDump(cmd *cobra.Command, args []string) error {
	_, st, err := loadStyle()
	if err != nil {
		return err
	}
	doc := styleDocument{
		Style: st.Style(),
		Theme: themeDocument{Variant: string(st.Variant()), Theme: st.Theme()},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode style: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runStyleGet(cmd *cobra.Command, args []string) error {
	_, st, err := loadStyle()
	if err != nil {
		return err
	}
	v, ok := st.Get(args[0], args[1])
	if !ok {
		return fmt.Errorf("unknown style key %s.%s", args[0], args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
