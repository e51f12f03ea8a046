// Package inline provides the application's non-interactive, scriptable execution mode.
package inline

import (
	"io"

	"github.com/lifo-cli/lifo/op"
)

// Options configures a single inline run.
type Options struct {
	// Out receives the rendered results; os.Stdout when nil.
	Out io.Writer
	// Values are pushed in order before any operation runs, so the last one is the top.
	Values []string
	// Ops are applied in order to the same stack.
	Ops  []op.Op
	Json bool
}
