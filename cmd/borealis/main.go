// Package main provides the borealis CLI for previewing and inspecting
// settings screens.
//
// Usage:
//
//	borealis preview [--watch]          Run the demo screen in the terminal
//	borealis layout [--width --height]  Print the laid out view tree
//	borealis style dump                 Print the effective style as YAML
//	borealis style get <component> <field>
//	borealis crash <message>            Preview the crash screen
//
// Global flags:
//
//	--style      style file layered over the defaults (yaml, toml or json)
//	--theme      theme variant, dark or light
//	--debug-log  append debug records to this file
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
