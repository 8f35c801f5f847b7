package component

// Dimension is one of the two parallel planes an entity lives in.
type Dimension uint8

const (
	DimensionFront Dimension = iota
	DimensionBack
)

func (d Dimension) String() string {
	switch d {
	case DimensionFront:
		return "front"
	case DimensionBack:
		return "back"
	default:
		return "unknown"
	}
}

// Other returns the opposite plane.
func (d Dimension) Other() Dimension {
	if d == DimensionFront {
		return DimensionBack
	}
	return DimensionFront
}

// ParseDimension maps "front"/"back" to a Dimension.
func ParseDimension(s string) (Dimension, bool) {
	switch s {
	case "front":
		return DimensionFront, true
	case "back":
		return DimensionBack, true
	default:
		return DimensionFront, false
	}
}

// EntityKind is the gameplay class of an entity.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindProjectile
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Layer is the symbolic identity of an entity for collision and
// visibility: what it is and which plane it is on. Bitmasks are derived
// from it, never the other way round.
type Layer struct {
	Kind      EntityKind
	Dimension Dimension
}

var LayerComponent = NewComponent[Layer]()

const (
	OpacityActive   = 1.0
	OpacityInactive = 0.5
)

// OpacityFor returns the render opacity of an entity on plane own while the
// scene is on plane current.
func OpacityFor(own, current Dimension) float64 {
	if own == current {
		return OpacityActive
	}
	return OpacityInactive
}
