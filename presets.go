package thumbnail

import "strings"

// Preset is a named emphasis style: outline width and drop shadow geometry.
type Preset struct {
	Name          string
	StrokeWidth   float64
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

// Presets are the built-in emphasis styles, from lightest to heaviest.
var Presets = []Preset{
	{Name: "Subtle", StrokeWidth: 0, ShadowBlur: 2, ShadowOffsetX: 1, ShadowOffsetY: 1},
	{Name: "Medium", StrokeWidth: 1, ShadowBlur: 4, ShadowOffsetX: 2, ShadowOffsetY: 2},
	{Name: "Strong", StrokeWidth: 2, ShadowBlur: 6, ShadowOffsetX: 3, ShadowOffsetY: 3},
	{Name: "Extreme", StrokeWidth: 3, ShadowBlur: 8, ShadowOffsetX: 4, ShadowOffsetY: 4},
}

// LookupPreset finds a built-in preset by name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply sets the preset's stroke and shadow geometry on a and turns on bold
// and the shadow. Colors are left unchanged.
func (p Preset) Apply(a *TextAnnotation) {
	a.StrokeWidth = p.StrokeWidth
	a.Shadow.Blur = p.ShadowBlur
	a.Shadow.OffsetX = p.ShadowOffsetX
	a.Shadow.OffsetY = p.ShadowOffsetY
	a.Shadow.Enabled = true
	a.Bold = true
}
