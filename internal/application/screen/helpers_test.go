package screen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/settings"
	"github.com/younwookim/skyflight/internal/domain/entity"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

// fakeAssets sizes sprites from the config's placeholder catalog
type fakeAssets struct {
	catalog map[string]config.SpriteConfig
	loaded  []string
}

func (a *fakeAssets) Load(name string) entity.Sprite {
	a.loaded = append(a.loaded, name)
	sc, ok := a.catalog[name]
	if !ok {
		return entity.Sprite{Name: name, Width: 32, Height: 32}
	}
	return entity.Sprite{Name: name, Width: float64(sc.Width), Height: float64(sc.Height)}
}

type fakeAudio struct {
	sounds []string
	syncs  int
}

func (a *fakeAudio) PlaySound(name string) bool {
	a.sounds = append(a.sounds, name)
	return true
}

func (a *fakeAudio) Sync() { a.syncs++ }

type drawCall struct {
	sprite string
	text   string
	x, y   float64
	anchor scene.Anchor
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawSprite(s entity.Sprite, x, y float64) {
	r.calls = append(r.calls, drawCall{sprite: s.Name, x: x, y: y})
}

func (r *recordingRenderer) DrawText(s string, size float64, x, y float64, anchor scene.Anchor) {
	r.calls = append(r.calls, drawCall{text: s, x: x, y: y, anchor: anchor})
}

type testEnv struct {
	deps  Deps
	clock *fakeClock
	audio *fakeAudio
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/skyflight/configs").LoadAll()
	require.NoError(t, err)

	clock := &fakeClock{}
	audio := &fakeAudio{}
	return &testEnv{
		deps: Deps{
			Config:   cfg.Game,
			Levels:   cfg.Levels,
			Assets:   &fakeAssets{catalog: cfg.Game.Sprites},
			Clock:    clock,
			Rand:     rand.New(rand.NewSource(1)),
			Audio:    audio,
			Settings: settings.Default(),
		},
		clock: clock,
		audio: audio,
	}
}

func (e *testEnv) stack() *scene.Stack {
	return scene.NewStack(NewRoot(e.deps))
}

func step(t *testing.T, s *scene.Stack, f input.Frame) {
	t.Helper()
	require.NoError(t, s.Step(f))
}

func topFlight(t *testing.T, s *scene.Stack) *Flight {
	t.Helper()
	f, ok := s.Top().(*Flight)
	require.True(t, ok, "top is %s", s.Top().Kind())
	return f
}

// startFlight presses confirm on the main menu
func startFlight(t *testing.T, e *testEnv) (*scene.Stack, *Flight) {
	t.Helper()
	s := e.stack()
	step(t, s, input.Press(input.KeyConfirm))
	return s, topFlight(t, s)
}

var (
	idle = input.Frame{}
	fire = input.Hold(input.KeyFire)
)
