package component

// Pointer stores per-frame pointer state in screen coordinates.
type Pointer struct {
	X, Y     float64
	Pressed  bool // went down this frame
	Held     bool
	WheelY   float64
	InWindow bool
}

var PointerComponent = NewComponent[Pointer]()

// Cursor is the cursor shape requested by the scene.
type Cursor struct {
	Hand bool
}

var CursorComponent = NewComponent[Cursor]()
