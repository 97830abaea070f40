// Package style holds the process-wide layout constants and theme colors
// consumed by the view tree, and loads them through viper.
//
// Values are keyed by component then field ("list.item" / "height").
// Defaults are registered first, then an optional YAML, TOML or JSON file
// and BOREALIS_-prefixed environment variables are layered on top. The
// result is validated and frozen into a Store that views read during a
// frame.
package style
