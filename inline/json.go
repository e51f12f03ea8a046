// Package inline provides the application's non-interactive, scriptable execution mode.
package inline

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/lifo-cli/lifo/op"
)

// Output is the JSON document written in json mode. Stacks are listed in pop order, top first.
type Output struct {
	Values    []any        `json:"values"`
	Results   []*op.Result `json:"results"`
	Remaining []any        `json:"remaining"`
}

// asJson encodes output without HTML escaping.
func asJson(output *Output) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(output); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Schema reflects the JSON Schema of Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch t.Name() {
		case "Result":
			return "op.Result"
		case "Output":
			return "inline.Output"
		}
		return t.Name()
	}
	return reflector.Reflect(&Output{})
}
