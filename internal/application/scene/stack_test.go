package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

// mockScene is a test double for the Scene interface
type mockScene struct {
	name    string
	kind    state.Kind
	overlay bool
	log     *[]string

	onInput   Transition
	onAdvance Transition

	inputCalled   int
	advanceCalled int
	onEnterCalled int
	onExitCalled  int
}

func (m *mockScene) Kind() state.Kind { return m.kind }

func (m *mockScene) HandleInput(input.Frame) Transition {
	m.inputCalled++
	t := m.onInput
	m.onInput = None()
	return t
}

func (m *mockScene) Advance() Transition {
	m.advanceCalled++
	t := m.onAdvance
	m.onAdvance = None()
	return t
}

func (m *mockScene) Draw(Renderer) {
	if m.log != nil {
		*m.log = append(*m.log, m.name)
	}
}

func (m *mockScene) OnEnter() { m.onEnterCalled++ }
func (m *mockScene) OnExit()  { m.onExitCalled++ }

type mockOverlay struct {
	mockScene
}

func (m *mockOverlay) Overlay() bool { return true }

type nopRenderer struct{}

func (nopRenderer) DrawSprite(entity.Sprite, float64, float64)         {}
func (nopRenderer) DrawText(string, float64, float64, float64, Anchor) {}

func TestNewStack(t *testing.T) {
	root := &mockScene{kind: state.MainMenu}
	s := NewStack(root)

	assert.Equal(t, 1, s.Len())
	assert.Same(t, root, s.Top())
	assert.Equal(t, 1, root.onEnterCalled, "OnEnter should be called on the root")
}

func TestStack_PushPop(t *testing.T) {
	root := &mockScene{}
	next := &mockScene{}
	s := NewStack(root)

	s.Push(next)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, next, s.Top())
	assert.Equal(t, 1, next.onEnterCalled)
	assert.Equal(t, []Scene{root, next}, s.Scenes())

	s.Pop()
	assert.Equal(t, 1, s.Len())
	assert.Same(t, root, s.Top())
	assert.Equal(t, 1, next.onExitCalled)
	assert.Equal(t, 0, root.onExitCalled)
}

func TestStack_PopRootPanics(t *testing.T) {
	s := NewStack(&mockScene{})

	assert.Panics(t, func() { s.Pop() })
	assert.Panics(t, func() { _ = s.Apply(Pop(1)) })
	assert.Equal(t, 1, s.Len())
}

func TestStack_PushNilPanics(t *testing.T) {
	s := NewStack(&mockScene{})

	assert.Panics(t, func() { s.Push(nil) })
}

func TestStack_Apply(t *testing.T) {
	t.Run("replace pops then pushes", func(t *testing.T) {
		root, a, b := &mockScene{}, &mockScene{}, &mockScene{}
		s := NewStack(root)
		s.Push(a)
		s.Push(b)

		fresh := &mockScene{}
		require.NoError(t, s.Apply(Replace(2, fresh)))

		assert.Equal(t, 2, s.Len())
		assert.Same(t, fresh, s.Top())
		assert.Equal(t, 1, a.onExitCalled)
		assert.Equal(t, 1, b.onExitCalled)
	})

	t.Run("pop to root", func(t *testing.T) {
		root := &mockScene{}
		s := NewStack(root)
		for i := 0; i < 4; i++ {
			s.Push(&mockScene{})
		}

		require.NoError(t, s.Apply(PopToRoot()))
		assert.Equal(t, 1, s.Len())
		assert.Same(t, root, s.Top())

		require.NoError(t, s.Apply(PopToRoot()), "already at root")
		assert.Equal(t, 1, s.Len())
	})

	t.Run("quit", func(t *testing.T) {
		s := NewStack(&mockScene{})

		assert.ErrorIs(t, s.Apply(Quit()), ErrQuit)
		assert.Equal(t, 1, s.Len(), "quit leaves the stack alone")
	})

	t.Run("none", func(t *testing.T) {
		s := NewStack(&mockScene{})

		assert.NoError(t, s.Apply(None()))
		assert.True(t, None().IsNone())
		assert.False(t, Pop(1).IsNone())
	})
}

func TestStack_Step(t *testing.T) {
	root := &mockScene{}
	pushed := &mockScene{}
	root.onInput = Push(pushed)
	s := NewStack(root)

	require.NoError(t, s.Step(input.Frame{}))

	assert.Equal(t, 1, root.inputCalled)
	assert.Equal(t, 0, root.advanceCalled, "scene beneath is frozen")
	assert.Equal(t, 0, pushed.inputCalled)
	assert.Equal(t, 1, pushed.advanceCalled, "logic runs on the new top")

	require.NoError(t, s.Step(input.Frame{}))
	assert.Equal(t, 1, root.inputCalled)
	assert.Equal(t, 1, pushed.inputCalled)
}

func TestStack_Step_AdvanceTransition(t *testing.T) {
	root := &mockScene{}
	top := &mockScene{onAdvance: Pop(1)}
	s := NewStack(root)
	s.Push(top)

	require.NoError(t, s.Step(input.Frame{}))
	assert.Same(t, root, s.Top())
}

func TestStack_Step_QuitSkipsAdvance(t *testing.T) {
	root := &mockScene{onInput: Quit()}
	s := NewStack(root)

	assert.ErrorIs(t, s.Step(input.Frame{}), ErrQuit)
	assert.Equal(t, 0, root.advanceCalled)
}

func TestStack_Draw(t *testing.T) {
	var drawn []string
	root := &mockScene{name: "menu", log: &drawn}
	flight := &mockScene{name: "flight", log: &drawn}
	pause := &mockOverlay{mockScene{name: "pause", log: &drawn}}
	s := NewStack(root)

	s.Draw(nopRenderer{})
	assert.Equal(t, []string{"menu"}, drawn)

	drawn = nil
	s.Push(flight)
	s.Draw(nopRenderer{})
	assert.Equal(t, []string{"flight"}, drawn, "only the top is drawn")

	drawn = nil
	s.Push(pause)
	s.Draw(nopRenderer{})
	assert.Equal(t, []string{"flight", "pause"}, drawn, "overlay draws its backdrop first")
}

func TestStack_Draw_NestedOverlays(t *testing.T) {
	var drawn []string
	s := NewStack(&mockScene{name: "menu", log: &drawn})
	s.Push(&mockScene{name: "flight", log: &drawn})
	s.Push(&mockOverlay{mockScene{name: "end", log: &drawn}})
	s.Push(&mockOverlay{mockScene{name: "pause", log: &drawn}})

	s.Draw(nopRenderer{})
	assert.Equal(t, []string{"flight", "end", "pause"}, drawn)
}

func TestStack_Draw_OverlayAtRoot(t *testing.T) {
	var drawn []string
	s := NewStack(&mockOverlay{mockScene{name: "root", log: &drawn}})

	s.Draw(nopRenderer{})
	assert.Equal(t, []string{"root"}, drawn)
}

// Random legal sequences never empty the stack
func TestStack_NeverEmpty(t *testing.T) {
	s := NewStack(&mockScene{})
	ops := []Transition{
		Push(&mockScene{}), Push(&mockScene{}), Pop(1), Push(&mockScene{}),
		Replace(1, &mockScene{}), PopToRoot(), Push(&mockScene{}), Pop(1),
	}

	for i, op := range ops {
		require.NoError(t, s.Apply(op), "op %d", i)
		assert.GreaterOrEqual(t, s.Len(), 1, "op %d", i)
	}
	assert.Equal(t, 1, s.Len())
}
