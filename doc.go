// Package borealis provides the view core of a retained-mode settings UI
// for a console-sized surface.
//
// Users import this single package for the complete public API: the view
// node contract, box layouts and lists, the list row family, settings and
// crash frames, the focus protocol, and the App host that drives layout,
// animation and drawing once per frame. Drawing is delegated to a Canvas
// backend; internal/termcanvas renders into a terminal for previews.
package borealis
