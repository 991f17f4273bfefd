// Package pen implements the pen extension: blocks that draw trails behind
// a target on a host-supplied pen layer. The host owns rendering; the
// extension keeps per-target pen state and forwards draw calls through the
// Renderer interface.
package pen

import (
	"math"

	"github.com/Gtd232/AerfuckyingExtensions/colors"
	"github.com/Gtd232/AerfuckyingExtensions/extensions"
)

// Attributes is the stroke description the host renderer consumes.
// Color4f channels are RGBA in [0,1].
type Attributes struct {
	Diameter float64
	Color4f  [4]float64
}

// Renderer is the host pen layer.
type Renderer interface {
	Clear()
	DrawPoint(attrs Attributes, x, y float64)
	DrawLine(attrs Attributes, x0, y0, x1, y1 float64)
}

const (
	minPenSize = 1
	maxPenSize = 1200
)

// Color parameter names, also the values of the colorParam menu.
const (
	paramColor        = "color"
	paramSaturation   = "saturation"
	paramBrightness   = "brightness"
	paramTransparency = "transparency"
)

// state is one target's pen. Color parameters live on a 0-100 scale, the
// block-facing convention.
type state struct {
	penDown      bool
	color        float64
	saturation   float64
	brightness   float64
	transparency float64
	diameter     float64
}

func defaultState() *state {
	return &state{
		color:      66.66,
		saturation: 100,
		brightness: 100,
		diameter:   1,
	}
}

// attributes converts the 0-100 color parameters into the renderer's
// stroke description.
func (s *state) attributes() Attributes {
	rgb := colors.HSVToRGB(colors.HSV{
		H: 360 * s.color / 100,
		S: s.saturation / 100,
		V: s.brightness / 100,
	})
	return Attributes{
		Diameter: s.diameter,
		Color4f: [4]float64{
			float64(rgb.R) / 255,
			float64(rgb.G) / 255,
			float64(rgb.B) / 255,
			1 - s.transparency/100,
		},
	}
}

// Extension holds per-target pen state. Draw calls are dropped until the
// host attaches its pen layer.
type Extension struct {
	renderer Renderer
	states   map[string]*state
}

// Default is the registered pen extension.
var Default = New(nil)

func init() {
	extensions.Register(Default)
}

// New creates a pen extension drawing on r. A nil renderer is allowed;
// state updates still apply and draws are dropped.
func New(r Renderer) *Extension {
	return &Extension{renderer: r, states: make(map[string]*state)}
}

// AttachRenderer connects the host pen layer. Hosts call this once at
// startup, before any pen blocks run.
func (e *Extension) AttachRenderer(r Renderer) {
	e.renderer = r
}

func (e *Extension) stateFor(target extensions.Target) *state {
	if target == nil {
		return defaultState()
	}
	s, ok := e.states[target.ID()]
	if !ok {
		s = defaultState()
		e.states[target.ID()] = s
	}
	return s
}

// OnTargetMoved draws a line segment from the old position to the target's
// current one while its pen is down. Hosts wire this to their movement
// events.
func (e *Extension) OnTargetMoved(target extensions.Target, oldX, oldY float64) {
	s := e.stateFor(target)
	if !s.penDown || e.renderer == nil {
		return
	}
	x, y := target.Position()
	e.renderer.DrawLine(s.attributes(), oldX, oldY, x, y)
}

func (e *Extension) Info() extensions.Info {
	return extensions.Info{
		ID:   "pen",
		Name: "Pen",
		Blocks: []extensions.BlockDef{
			{Opcode: "clear", Type: extensions.Command, Text: "erase all"},
			{Opcode: "penDown", Type: extensions.Command, Text: "pen down"},
			{Opcode: "penUp", Type: extensions.Command, Text: "pen up"},
			{Opcode: "setPenColorToColor", Type: extensions.Command,
				Text: "set pen color to [COLOR]",
				Args: map[string]extensions.ArgDef{
					"COLOR": {Type: extensions.ArgColor},
				}},
			{Opcode: "changePenColorParamBy", Type: extensions.Command,
				Text: "change pen [COLOR_PARAM] by [VALUE]",
				Args: map[string]extensions.ArgDef{
					"COLOR_PARAM": {Type: extensions.ArgString, Menu: "colorParam", Default: paramColor},
					"VALUE":       {Type: extensions.ArgNumber, Default: 10},
				}},
			{Opcode: "setPenColorParamTo", Type: extensions.Command,
				Text: "set pen [COLOR_PARAM] to [VALUE]",
				Args: map[string]extensions.ArgDef{
					"COLOR_PARAM": {Type: extensions.ArgString, Menu: "colorParam", Default: paramColor},
					"VALUE":       {Type: extensions.ArgNumber, Default: 50},
				}},
			{Opcode: "changePenSizeBy", Type: extensions.Command,
				Text: "change pen size by [SIZE]",
				Args: map[string]extensions.ArgDef{
					"SIZE": {Type: extensions.ArgNumber, Default: 1},
				}},
			{Opcode: "setPenSizeTo", Type: extensions.Command,
				Text: "set pen size to [SIZE]",
				Args: map[string]extensions.ArgDef{
					"SIZE": {Type: extensions.ArgNumber, Default: 1},
				}},
		},
		Menus: map[string]extensions.MenuDef{
			"colorParam": {
				Items: []extensions.MenuItem{
					{Text: "color", Value: paramColor},
					{Text: "saturation", Value: paramSaturation},
					{Text: "brightness", Value: paramBrightness},
					{Text: "transparency", Value: paramTransparency},
				},
			},
		},
	}
}

func (e *Extension) Handlers() map[string]extensions.Handler {
	return map[string]extensions.Handler{
		"clear":                 e.clear,
		"penDown":               e.penDown,
		"penUp":                 e.penUp,
		"setPenColorToColor":    e.setPenColorToColor,
		"changePenColorParamBy": e.changePenColorParamBy,
		"setPenColorParamTo":    e.setPenColorParamTo,
		"changePenSizeBy":       e.changePenSizeBy,
		"setPenSizeTo":          e.setPenSizeTo,
	}
}

func (e *Extension) clear(_ extensions.Arguments, _ extensions.Target) any {
	if e.renderer != nil {
		e.renderer.Clear()
	}
	return nil
}

func (e *Extension) penDown(_ extensions.Arguments, target extensions.Target) any {
	s := e.stateFor(target)
	s.penDown = true
	if e.renderer != nil && target != nil {
		x, y := target.Position()
		e.renderer.DrawPoint(s.attributes(), x, y)
	}
	return nil
}

func (e *Extension) penUp(_ extensions.Arguments, target extensions.Target) any {
	e.stateFor(target).penDown = false
	return nil
}

func (e *Extension) setPenColorToColor(args extensions.Arguments, target extensions.Target) any {
	s := e.stateFor(target)
	rgba := args.Color("COLOR")
	hsv := colors.RGBToHSV(rgba.RGB)
	s.color = 100 * hsv.H / 360
	s.saturation = 100 * hsv.S
	s.brightness = 100 * hsv.V
	s.transparency = 100 * (1 - float64(rgba.A)/255)
	return nil
}

func (e *Extension) changePenColorParamBy(args extensions.Arguments, target extensions.Target) any {
	s := e.stateFor(target)
	setColorParam(s, args.String("COLOR_PARAM"),
		colorParamValue(s, args.String("COLOR_PARAM"))+args.Number("VALUE"))
	return nil
}

func (e *Extension) setPenColorParamTo(args extensions.Arguments, target extensions.Target) any {
	setColorParam(e.stateFor(target), args.String("COLOR_PARAM"), args.Number("VALUE"))
	return nil
}

func (e *Extension) changePenSizeBy(args extensions.Arguments, target extensions.Target) any {
	s := e.stateFor(target)
	s.diameter = clampSize(s.diameter + args.Number("SIZE"))
	return nil
}

func (e *Extension) setPenSizeTo(args extensions.Arguments, target extensions.Target) any {
	e.stateFor(target).diameter = clampSize(args.Number("SIZE"))
	return nil
}

func colorParamValue(s *state, param string) float64 {
	switch param {
	case paramColor:
		return s.color
	case paramSaturation:
		return s.saturation
	case paramBrightness:
		return s.brightness
	case paramTransparency:
		return s.transparency
	}
	return 0
}

// setColorParam updates one color parameter. Hue wraps around the 0-100
// scale; the other parameters clamp to it. Unknown parameter names are
// ignored.
func setColorParam(s *state, param string, value float64) {
	switch param {
	case paramColor:
		s.color = wrapClamp(value)
	case paramSaturation:
		s.saturation = clamp100(value)
	case paramBrightness:
		s.brightness = clamp100(value)
	case paramTransparency:
		s.transparency = clamp100(value)
	}
}

func wrapClamp(value float64) float64 {
	wrapped := math.Mod(value, 100)
	if wrapped < 0 {
		wrapped += 100
	}
	return wrapped
}

func clamp100(value float64) float64 {
	return math.Max(0, math.Min(value, 100))
}

func clampSize(size float64) float64 {
	return math.Max(minPenSize, math.Min(size, maxPenSize))
}
