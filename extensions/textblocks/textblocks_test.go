package textblocks

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gtd232/AerfuckyingExtensions/extensions"
)

func TestRegistered(t *testing.T) {
	ext, ok := extensions.Get("textblocks")
	require.True(t, ok)
	assert.Equal(t, "Text", ext.Info().Name)

	handlers := ext.Handlers()
	for _, b := range ext.Info().Blocks {
		assert.Contains(t, handlers, b.Opcode)
	}
	assert.Len(t, handlers, len(ext.Info().Blocks))
}

func TestLetterOf(t *testing.T) {
	e := &Extension{}

	assert.Equal(t, "e", e.letterOf(extensions.Arguments{"LETTER": 2, "STRING": "hello"}, nil))
	assert.Equal(t, "h", e.letterOf(extensions.Arguments{"LETTER": "1", "STRING": "hello"}, nil))

	// Out of range reports the empty string.
	assert.Equal(t, "", e.letterOf(extensions.Arguments{"LETTER": 0, "STRING": "hello"}, nil))
	assert.Equal(t, "", e.letterOf(extensions.Arguments{"LETTER": 6, "STRING": "hello"}, nil))
	assert.Equal(t, "", e.letterOf(extensions.Arguments{"LETTER": "x", "STRING": "hello"}, nil))

	// Letters are runes, not bytes.
	assert.Equal(t, "é", e.letterOf(extensions.Arguments{"LETTER": 2, "STRING": "héllo"}, nil))
}

func TestLengthOf(t *testing.T) {
	e := &Extension{}

	assert.Equal(t, 5.0, e.lengthOf(extensions.Arguments{"STRING": "hello"}, nil))
	assert.Equal(t, 0.0, e.lengthOf(extensions.Arguments{"STRING": ""}, nil))
	assert.Equal(t, 5.0, e.lengthOf(extensions.Arguments{"STRING": "héllo"}, nil))
	assert.Equal(t, 2.0, e.lengthOf(extensions.Arguments{"STRING": 42}, nil))
}

func TestContains(t *testing.T) {
	e := &Extension{}

	assert.Equal(t, true, e.contains(extensions.Arguments{"STRING1": "Hello", "STRING2": "ELL"}, nil))
	assert.Equal(t, false, e.contains(extensions.Arguments{"STRING1": "Hello", "STRING2": "xyz"}, nil))
}

func TestSplit(t *testing.T) {
	e := &Extension{}

	got := e.split(extensions.Arguments{"STRING": "a,b,c", "SEPARATOR": ","}, nil)
	assert.Equal(t, []any{"a", "b", "c"}, got)
}

func TestJSONValueOf(t *testing.T) {
	e := &Extension{}
	doc := `{"name": "cat", "stats": {"lives": 9}, "toys": ["ball", "string"]}`

	value := func(path string) any {
		return e.jsonValueOf(extensions.Arguments{"PATH": path, "JSON": doc}, nil)
	}

	assert.Equal(t, "cat", value("name"))
	assert.Equal(t, 9.0, value("stats.lives"))
	// List positions are 1-based.
	assert.Equal(t, "ball", value("toys.1"))
	assert.Equal(t, "string", value("toys.last"))
	// Nested structures report as JSON text.
	assert.Equal(t, `{"lives":9}`, value("stats"))

	assert.Equal(t, "", value("missing"))
	assert.Equal(t, "", value("toys.0"))
	assert.Equal(t, "", value("toys.3"))
	assert.Equal(t, "", value("name.deeper"))
}

func TestJSONValueOfMalformed(t *testing.T) {
	e := &Extension{}

	got := e.jsonValueOf(extensions.Arguments{"PATH": "a", "JSON": "{not json"}, nil)
	assert.Equal(t, "", got)
}

func TestInfoExport(t *testing.T) {
	data, err := extensions.ExportJSON("textblocks")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "info", data)
}
