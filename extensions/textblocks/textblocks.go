// Package textblocks implements the string and JSON reporter blocks.
// Everything reports a value; failures (index out of range, malformed
// JSON, missing key) report the empty string instead of erroring.
package textblocks

import (
	"encoding/json"
	"strings"

	"github.com/Gtd232/AerfuckyingExtensions/cast"
	"github.com/Gtd232/AerfuckyingExtensions/extensions"
)

// Extension is stateless; all blocks are pure reporters.
type Extension struct{}

func init() {
	extensions.Register(&Extension{})
}

func (e *Extension) Info() extensions.Info {
	return extensions.Info{
		ID:   "textblocks",
		Name: "Text",
		Blocks: []extensions.BlockDef{
			{Opcode: "letterOf", Type: extensions.Reporter,
				Text: "letter [LETTER] of [STRING]",
				Args: map[string]extensions.ArgDef{
					"LETTER": {Type: extensions.ArgNumber, Default: 1},
					"STRING": {Type: extensions.ArgString, Default: "world"},
				}},
			{Opcode: "lengthOf", Type: extensions.Reporter,
				Text: "length of [STRING]",
				Args: map[string]extensions.ArgDef{
					"STRING": {Type: extensions.ArgString, Default: "world"},
				}},
			{Opcode: "contains", Type: extensions.Boolean,
				Text: "[STRING1] contains [STRING2]?",
				Args: map[string]extensions.ArgDef{
					"STRING1": {Type: extensions.ArgString, Default: "hello"},
					"STRING2": {Type: extensions.ArgString, Default: "ell"},
				}},
			{Opcode: "split", Type: extensions.Reporter,
				Text: "split [STRING] by [SEPARATOR]",
				Args: map[string]extensions.ArgDef{
					"STRING":    {Type: extensions.ArgString, Default: "a,b,c"},
					"SEPARATOR": {Type: extensions.ArgString, Default: ","},
				}},
			{Opcode: "jsonValueOf", Type: extensions.Reporter,
				Text: "value of [PATH] in [JSON]",
				Args: map[string]extensions.ArgDef{
					"PATH": {Type: extensions.ArgString, Default: "name"},
					"JSON": {Type: extensions.ArgString, Default: `{"name": "cat"}`},
				}},
		},
	}
}

func (e *Extension) Handlers() map[string]extensions.Handler {
	return map[string]extensions.Handler{
		"letterOf":    e.letterOf,
		"lengthOf":    e.lengthOf,
		"contains":    e.contains,
		"split":       e.split,
		"jsonValueOf": e.jsonValueOf,
	}
}

func (e *Extension) letterOf(args extensions.Arguments, _ extensions.Target) any {
	index := int(args.Number("LETTER"))
	letters := []rune(args.String("STRING"))
	if index < 1 || index > len(letters) {
		return ""
	}
	return string(letters[index-1])
}

func (e *Extension) lengthOf(args extensions.Arguments, _ extensions.Target) any {
	return float64(len([]rune(args.String("STRING"))))
}

func (e *Extension) contains(args extensions.Arguments, _ extensions.Target) any {
	haystack := strings.ToLower(args.String("STRING1"))
	needle := strings.ToLower(args.String("STRING2"))
	return strings.Contains(haystack, needle)
}

func (e *Extension) split(args extensions.Arguments, _ extensions.Target) any {
	parts := strings.Split(args.String("STRING"), args.String("SEPARATOR"))
	result := make([]any, len(parts))
	for i, p := range parts {
		result[i] = p
	}
	return result
}

// jsonValueOf looks up a dot path in a JSON document. Path components
// address object keys, or 1-based positions when the current node is a
// list. Scalars report as block values; nested structures report as their
// JSON text.
func (e *Extension) jsonValueOf(args extensions.Arguments, _ extensions.Target) any {
	var doc any
	if err := json.Unmarshal([]byte(args.String("JSON")), &doc); err != nil {
		return ""
	}
	path := args.String("PATH")
	if path != "" {
		for _, component := range strings.Split(path, ".") {
			switch node := doc.(type) {
			case map[string]any:
				child, ok := node[component]
				if !ok {
					return ""
				}
				doc = child
			case []any:
				ix := cast.ToListIndex(component, len(node), false, nil)
				if !ix.Valid() {
					return ""
				}
				doc = node[ix.N-1]
			default:
				return ""
			}
		}
	}
	switch v := doc.(type) {
	case nil, bool, float64, string:
		return v
	default:
		text, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(text)
	}
}
