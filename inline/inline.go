// Package inline provides the application's non-interactive, scriptable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/op"
	"github.com/lifo-cli/lifo/query"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Run applies options.Ops to a stack built from options.Values and writes the results to options.Out.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Build the stack from the given values.
	s := stack.Of(script.ParseAll(options.Values)...)
	initial := s.Items()
	log.Infof("inline run over %s with %s", util.Quantify(s.Len(), "value", "values"), util.Quantify(len(options.Ops), "operation", "operations"))

	// Step 2: Apply every operation in order.
	results, err := op.ApplyAll(s, options.Ops)
	if err != nil {
		return err
	}

	if err := query.RememberOps(options.Ops); err != nil {
		log.Warnf("failed to remember operations: %v", err)
	}

	// Step 3: Dispatch the processed results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, &Output{
			Values:    toGo(initial),
			Results:   results,
			Remaining: toGo(s.Items()),
		})
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(options.Out, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func toGo(values []lua.LValue) []any {
	return lo.Map(values, func(v lua.LValue, _ int) any {
		return script.ToGo(v)
	})
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
