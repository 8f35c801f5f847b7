package component

// Physics categories per entity class and dimension. The values are
// pairwise distinct; they identify a body and give contact pairs a total
// order, but they are not used as broad-phase filter bits.
const (
	CategoryNone            uint32 = 0
	CategoryPlayerFront     uint32 = 0b1
	CategoryPlayerBack      uint32 = 0b10
	CategoryEnemyFront      uint32 = 0b11
	CategoryProjectileFront uint32 = 0b100
	CategoryEnemyBack       uint32 = 0b101
	CategoryProjectileBack  uint32 = 0b110
)

// Categories lists every category constant, for exhaustiveness checks.
var Categories = []uint32{
	CategoryPlayerFront,
	CategoryPlayerBack,
	CategoryEnemyFront,
	CategoryProjectileFront,
	CategoryEnemyBack,
	CategoryProjectileBack,
}

// CategoryFor returns the category mask of a layer.
func CategoryFor(l Layer) uint32 {
	switch l.Kind {
	case KindPlayer:
		if l.Dimension == DimensionBack {
			return CategoryPlayerBack
		}
		return CategoryPlayerFront
	case KindEnemy:
		if l.Dimension == DimensionBack {
			return CategoryEnemyBack
		}
		return CategoryEnemyFront
	case KindProjectile:
		if l.Dimension == DimensionBack {
			return CategoryProjectileBack
		}
		return CategoryProjectileFront
	default:
		return CategoryNone
	}
}

// ContactMaskFor returns the contact-test mask of a layer: enemies test
// against the player of their own plane, everything else tests nothing.
func ContactMaskFor(l Layer) uint32 {
	if l.Kind != KindEnemy {
		return CategoryNone
	}
	return CategoryFor(Layer{Kind: KindPlayer, Dimension: l.Dimension})
}

// LayerForCategory is the inverse of CategoryFor.
func LayerForCategory(category uint32) (Layer, bool) {
	switch category {
	case CategoryPlayerFront:
		return Layer{Kind: KindPlayer, Dimension: DimensionFront}, true
	case CategoryPlayerBack:
		return Layer{Kind: KindPlayer, Dimension: DimensionBack}, true
	case CategoryEnemyFront:
		return Layer{Kind: KindEnemy, Dimension: DimensionFront}, true
	case CategoryEnemyBack:
		return Layer{Kind: KindEnemy, Dimension: DimensionBack}, true
	case CategoryProjectileFront:
		return Layer{Kind: KindProjectile, Dimension: DimensionFront}, true
	case CategoryProjectileBack:
		return Layer{Kind: KindProjectile, Dimension: DimensionBack}, true
	default:
		return Layer{}, false
	}
}
