package display

import (
	"github.com/logrusorgru/aurora"

	"github.com/qtraffics/qtstatus/sys/battery"
)

// 256 colour palette indexes.
const (
	colorRed    uint8 = 196
	colorGreen  uint8 = 40
	colorYellow uint8 = 226
	colorBlue   uint8 = 21
)

// Palette maps battery categories to terminal styles. dwm status patches
// that understand ANSI sequences render them as colours.
type Palette struct {
	au aurora.Aurora
}

func NewPalette(colors bool) Palette {
	return Palette{au: aurora.NewAurora(colors)}
}

func (p Palette) Battery(r battery.Reading) string {
	var index uint8
	switch r.Category {
	case battery.CategoryLow:
		index = colorRed
	case battery.CategoryMid:
		index = colorYellow
	case battery.CategoryHigh:
		index = colorGreen
	case battery.CategoryCharging:
		index = colorBlue
	default:
		return r.Text
	}
	if p.au == nil {
		return r.Text
	}
	return p.au.Index(index, r.Text).String()
}
