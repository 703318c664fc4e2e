package graphics

// Pointer is the mouse state in logical window coordinates, top-left
// origin.
type Pointer struct {
	X, Y float64
	Down bool
}

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	GetWindowSize() (int, int)
	// Time is the number of seconds since the context was created.
	Time() float64
	GetPointer() Pointer
}
