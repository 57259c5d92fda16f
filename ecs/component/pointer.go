package component

// PointerTarget makes a mesh node receive pointer callbacks.
type PointerTarget struct {
	OnOver func()
	OnOut  func()
	OnDown func()

	Hovered bool
}

var PointerTargetComponent = NewComponent[PointerTarget]()

// Hover scales a node while the pointer is over it.
type Hover struct {
	Active bool
	Scale  float64
}

var HoverComponent = NewComponent[Hover]()
