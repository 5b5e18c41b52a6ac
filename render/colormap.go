package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorStop anchors a color at a position along a colormap.
type ColorStop struct {
	Position float64
	Color    colorful.Color
}

// Colormap maps a scalar in [0,1] to a color by linear interpolation
// between ordered stops. It is an immutable value, built once and passed
// into the renderer rather than held as package state.
type Colormap struct {
	stops []ColorStop
}

func NewColormap(stops ...ColorStop) Colormap {
	if len(stops) == 0 {
		panic("colormap needs at least one stop")
	}
	own := make([]ColorStop, len(stops))
	copy(own, stops)
	return Colormap{stops: own}
}

// NewDensityColormap is the standard gradient for material density:
// white through pale rose to brick red, anchored at 0, 0.5 and 1.
func NewDensityColormap() Colormap {
	return NewColormap(
		ColorStop{Position: 0.0, Color: mustHex("#ffffff")},
		ColorStop{Position: 0.5, Color: mustHex("#e6d0d1")},
		ColorStop{Position: 1.0, Color: mustHex("#9e5457")},
	)
}

// At evaluates the colormap. Values outside [0,1] clamp to the ends.
func (cm Colormap) At(v float64) colorful.Color {
	stops := cm.stops
	if v <= stops[0].Position {
		return stops[0].Color
	}
	if v >= stops[len(stops)-1].Position {
		return stops[len(stops)-1].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if v > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span == 0 {
			return hi.Color
		}
		return lo.Color.BlendRgb(hi.Color, (v-lo.Position)/span)
	}
	return stops[len(stops)-1].Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
