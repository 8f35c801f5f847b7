package component

import "image/color"

// Appearance is the flat colour a shape is drawn with before opacity.
type Appearance struct {
	Color color.NRGBA
}

var AppearanceComponent = NewComponent[Appearance]()
