// Package input defines the events a window delivers to the render loop.
package input

// Event is any window input event. Consumers switch on the concrete type and
// ignore the ones they do not understand.
type Event interface {
	isEvent()
}

// Close is sent when the user asks to close the window.
type Close struct{}

// Resize reports new framebuffer dimensions.
type Resize struct {
	Width, Height int
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Drag is pointer movement while a button is held, in pixels.
type Drag struct {
	Button Button
	DX, DY float32
}

// Scroll is wheel movement; positive is away from the user.
type Scroll struct {
	Delta float32
}

type Key uint16

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyR
)

// KeyState reports a key press (Down true) or release.
type KeyState struct {
	Key  Key
	Down bool
}

func (Close) isEvent()    {}
func (Resize) isEvent()   {}
func (Drag) isEvent()     {}
func (Scroll) isEvent()   {}
func (KeyState) isEvent() {}
