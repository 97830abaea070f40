// Package debug provides optional file-based debug logging.
//
// When the BOREALIS_DEBUG environment variable is set to a file path, debug
// records are appended to that file as slog text lines. Otherwise logging is
// a no-op, so call sites in focus and lifecycle code cost nothing in normal
// runs.
package debug
