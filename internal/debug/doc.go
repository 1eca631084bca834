// Package debug provides optional file-based debug logging.
//
// When the NODEUI_DEBUG environment variable is set to a file path, debug
// entries are appended to that file as development-format zap output.
// Otherwise, logging is a no-op.
package debug
