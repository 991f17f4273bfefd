// Package extensions defines the block-extension model: the metadata an
// extension declares to the host (blocks, argument slots, menus) and the
// registry the host reads it from. Extensions register themselves via
// init() and supply one handler per block opcode; block registration and
// scheduling stay on the host side.
package extensions

import (
	"math/rand/v2"

	"github.com/Gtd232/AerfuckyingExtensions/cast"
	"github.com/Gtd232/AerfuckyingExtensions/colors"
)

// ArgType names the shape of a block argument slot.
type ArgType string

const (
	ArgString  ArgType = "string"
	ArgNumber  ArgType = "number"
	ArgBoolean ArgType = "Boolean"
	ArgColor   ArgType = "color"
	ArgAngle   ArgType = "angle"
	ArgMatrix  ArgType = "matrix"
	ArgNote    ArgType = "note"
)

// BlockType says how a block participates in a script.
type BlockType string

const (
	Command  BlockType = "command"
	Reporter BlockType = "reporter"
	Boolean  BlockType = "Boolean"
	Hat      BlockType = "hat"
)

// ArgDef describes one argument slot of a block.
type ArgDef struct {
	Type    ArgType `json:"type"`
	Default any     `json:"defaultValue,omitempty"`
	Menu    string  `json:"menu,omitempty"`
}

// BlockDef describes a block: its opcode, how it participates in a script,
// and the display text with [NAME] placeholders for its argument slots.
type BlockDef struct {
	Opcode string            `json:"opcode"`
	Type   BlockType         `json:"blockType"`
	Text   string            `json:"text"`
	Args   map[string]ArgDef `json:"arguments,omitempty"`
}

// MenuItem is one entry of a dropdown menu.
type MenuItem struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// MenuDef describes a dropdown menu an argument slot can reference.
type MenuDef struct {
	AcceptReporters bool       `json:"acceptReporters"`
	Items           []MenuItem `json:"items"`
}

// Info is the metadata document an extension hands to the host.
type Info struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Blocks []BlockDef         `json:"blocks"`
	Menus  map[string]MenuDef `json:"menus,omitempty"`
}

// Target is the host object a block invocation runs against. Hosts supply
// richer targets; blocks here only need identity and position.
type Target interface {
	ID() string
	Position() (x, y float64)
}

// Arguments carries one invocation's argument values keyed by slot name.
// Values are dynamic; the typed getters run them through cast, so a
// missing or malformed argument coerces to a fallback instead of failing.
type Arguments map[string]any

func (a Arguments) String(name string) string { return cast.ToString(a[name]) }

func (a Arguments) Number(name string) float64 { return cast.ToNumber(a[name]) }

func (a Arguments) Bool(name string) bool { return cast.ToBoolean(a[name]) }

func (a Arguments) Color(name string) colors.RGBA { return cast.ToRGBColorObject(a[name]) }

// ListIndex resolves an argument against a list of the given length.
func (a Arguments) ListIndex(name string, length int, acceptAll bool, rng *rand.Rand) cast.ListIndex {
	return cast.ToListIndex(a[name], length, acceptAll, rng)
}

// Handler executes one block against its invocation target. Handlers are
// total: bad arguments coerce to fallbacks, command blocks return nil, and
// reporter blocks return a dynamic value.
type Handler func(args Arguments, target Target) any

// Extension is a host-controlled plugin: metadata plus one handler per
// block opcode.
type Extension interface {
	Info() Info
	Handlers() map[string]Handler
}
