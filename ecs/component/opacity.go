package component

type Opacity struct {
	Alpha float64
}

var OpacityComponent = NewComponent[Opacity]()
