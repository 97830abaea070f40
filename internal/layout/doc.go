// Package layout holds the geometry used by the view tree: integer
// rectangles, edge insets and the Track cursor that stacks
// consecutive slots along one axis of a box.
//
// Types are re-exported through the root borealis package.
package layout
