package main

import (
	"fmt"

	"github.com/grindlemire/borealis"
)

// newDemoFrame builds the settings screen shown by preview and layout.
func newDemoFrame() *borealis.SettingsFrame {
	list := borealis.NewList(1)

	list.AddView(borealis.NewHeader("Network", true))
	wifi := borealis.NewToggleListItem("Wi-Fi", true, "", borealis.ToggleOnOff)
	list.AddView(wifi)
	list.AddView(borealis.NewToggleListItem("Airplane mode", false, "Disables every radio until turned off again.", borealis.ToggleOnOff))
	list.AddView(borealis.NewInputListItem("Device name", "borealis", "Name shown to other devices", "", 32))

	list.AddView(borealis.NewListItemGroupSpacing(true))

	list.AddView(borealis.NewHeader("System", true))
	list.AddView(borealis.NewSelectListItem("Language", []string{"English", "Français", "Deutsch", "日本語"}, 0))
	list.AddView(borealis.NewSelectListItem("Theme", []string{"Dark", "Light"}, 0))
	list.AddView(borealis.NewIntegerInputListItem("Sleep after", 5, "Minutes of inactivity", "", 3))
	list.AddView(borealis.NewToggleListItem("Crash reports", true, "", borealis.ToggleYesNo))

	info := borealis.NewTable()
	info.AddRow("Version", version)
	info.AddRow("Build", "demo")
	list.AddView(info)

	about := borealis.NewListItem("About", "", "borealis view core")
	list.AddView(about)

	frame := borealis.NewSettingsFrame(false, false)
	frame.SetTitle("Settings")
	frame.SetFooterText(fmt.Sprintf("borealis %s", version))
	frame.SetContentView(list)
	return frame
}
