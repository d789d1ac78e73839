package scene

// Op is the kind of stack change a Transition requests
type Op int

const (
	OpNone Op = iota
	OpPush
	OpPop
	OpReplace
	OpPopToRoot
	OpQuit
)

// Transition is a stack change requested by the top scene
type Transition struct {
	Op   Op
	N    int
	Next Scene
}

// None keeps the stack as it is
func None() Transition {
	return Transition{}
}

// Push puts s on top of the current scene
func Push(s Scene) Transition {
	return Transition{Op: OpPush, Next: s}
}

// Pop removes n scenes from the top
func Pop(n int) Transition {
	return Transition{Op: OpPop, N: n}
}

// Replace pops n scenes and then pushes s
func Replace(n int, s Scene) Transition {
	return Transition{Op: OpReplace, N: n, Next: s}
}

// PopToRoot removes everything but the root scene
func PopToRoot() Transition {
	return Transition{Op: OpPopToRoot}
}

// Quit ends the game
func Quit() Transition {
	return Transition{Op: OpQuit}
}

// IsNone reports whether the transition leaves the stack unchanged
func (t Transition) IsNone() bool {
	return t.Op == OpNone
}
