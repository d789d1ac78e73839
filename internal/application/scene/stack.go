package scene

import (
	"fmt"

	"github.com/younwookim/skyflight/internal/application/input"
)

type entry struct {
	scene Scene
	// previous is the index of the entry beneath, -1 for the root.
	// Only read when an overlay draws its backdrop.
	previous int
}

// Stack is a push-down automaton of scenes. It is never empty.
type Stack struct {
	entries []entry
}

// NewStack creates a stack holding root, which can never be popped
func NewStack(root Scene) *Stack {
	if root == nil {
		panic("scene: nil root scene")
	}
	s := &Stack{}
	s.Push(root)
	return s
}

// Push puts a scene on top and calls its OnEnter
func (s *Stack) Push(sc Scene) {
	if sc == nil {
		panic("scene: push of nil scene")
	}
	s.entries = append(s.entries, entry{scene: sc, previous: len(s.entries) - 1})
	sc.OnEnter()
}

// Pop removes the top scene and calls its OnExit.
// Popping the root is a programming error and panics.
func (s *Stack) Pop() {
	if len(s.entries) <= 1 {
		panic("scene: pop of root scene")
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = entry{}
	s.entries = s.entries[:len(s.entries)-1]
	top.scene.OnExit()
}

// Top returns the live scene
func (s *Stack) Top() Scene {
	return s.entries[len(s.entries)-1].scene
}

// Len returns the number of scenes on the stack
func (s *Stack) Len() int {
	return len(s.entries)
}

// Scenes returns the scenes from the root up to the top
func (s *Stack) Scenes() []Scene {
	out := make([]Scene, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.scene
	}
	return out
}

// Apply performs a transition. It returns ErrQuit for OpQuit.
func (s *Stack) Apply(t Transition) error {
	switch t.Op {
	case OpNone:
	case OpPush:
		s.Push(t.Next)
	case OpPop:
		s.popN(t.N)
	case OpReplace:
		s.popN(t.N)
		s.Push(t.Next)
	case OpPopToRoot:
		for len(s.entries) > 1 {
			s.Pop()
		}
	case OpQuit:
		return ErrQuit
	default:
		panic(fmt.Sprintf("scene: unknown transition op %d", t.Op))
	}
	return nil
}

func (s *Stack) popN(n int) {
	if n >= len(s.entries) {
		panic(fmt.Sprintf("scene: pop of %d scenes from a stack of %d", n, len(s.entries)))
	}
	for i := 0; i < n; i++ {
		s.Pop()
	}
}

// Step runs one frame: input on the top scene, then logic on whichever
// scene is on top after that input was applied.
func (s *Stack) Step(f input.Frame) error {
	if err := s.Apply(s.Top().HandleInput(f)); err != nil {
		return err
	}
	return s.Apply(s.Top().Advance())
}

// Draw renders the top scene. Overlays get the scene beneath drawn first,
// recursively, so a pause menu over an end screen still shows the flight.
func (s *Stack) Draw(r Renderer) {
	s.drawAt(len(s.entries)-1, r)
}

func (s *Stack) drawAt(i int, r Renderer) {
	e := s.entries[i]
	if o, ok := e.scene.(Overlay); ok && o.Overlay() && e.previous >= 0 {
		s.drawAt(e.previous, r)
	}
	e.scene.Draw(r)
}
