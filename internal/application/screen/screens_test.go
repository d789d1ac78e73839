package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

func TestMainMenu_Exit(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()

	step(t, s, input.Press(input.KeyUp))
	err := s.Step(input.Press(input.KeyConfirm))

	assert.ErrorIs(t, err, scene.ErrQuit)
	assert.Equal(t, 1, s.Len())
}

func TestMainMenu_Navigation(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  state.Kind
	}{
		{"start", 0, state.Flight},
		{"levels", 1, state.LevelSelect},
		{"settings", 2, state.Settings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			s := e.stack()
			for i := 0; i < tt.downs; i++ {
				step(t, s, input.Press(input.KeyDown))
			}
			step(t, s, input.Press(input.KeyConfirm))

			assert.Equal(t, tt.want, s.Top().Kind())
			assert.Equal(t, 2, s.Len())
		})
	}
}

func TestMainMenu_ClickStarts(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()

	// First row spans y 215..265 around x 300..600
	step(t, s, input.Frame{Events: []input.Event{input.MouseDownEvent{X: 450, Y: 240}}})
	assert.Equal(t, state.Flight, s.Top().Kind())
}

func TestPause_Resume(t *testing.T) {
	e := newTestEnv(t)
	s, f := startFlight(t, e)
	enemy := f.Combat().SpawnEnemy()
	top := enemy.Rect.Top

	step(t, s, input.Press(input.KeyPause))
	require.Equal(t, state.Pause, s.Top().Kind())
	assert.Equal(t, 3, s.Len())

	// The flight beneath is frozen
	step(t, s, idle)
	step(t, s, input.Hold(input.KeyRight))
	assert.Equal(t, top, enemy.Rect.Top, "the flight does not advance while paused")
	assert.Equal(t, 0.0, f.Player().Rect.Left)

	step(t, s, input.Press(input.KeyPause))
	assert.Same(t, f, s.Top())
	assert.Equal(t, top+2, enemy.Rect.Top)
}

func TestPause_MenuOptions(t *testing.T) {
	tests := []struct {
		name  string
		keys  []input.Key
		check func(t *testing.T, s *scene.Stack, old *Flight)
	}{
		{
			name: "play",
			keys: []input.Key{input.KeyConfirm},
			check: func(t *testing.T, s *scene.Stack, old *Flight) {
				assert.Same(t, old, s.Top())
			},
		},
		{
			name: "restart",
			keys: []input.Key{input.KeyDown, input.KeyConfirm},
			check: func(t *testing.T, s *scene.Stack, old *Flight) {
				assert.Equal(t, 2, s.Len())
				f := topFlight(t, s)
				assert.NotSame(t, old, f)
				assert.Equal(t, 0, f.Score())
				assert.Equal(t, 1, f.Level())
			},
		},
		{
			name: "options",
			keys: []input.Key{input.KeyDown, input.KeyDown, input.KeyConfirm},
			check: func(t *testing.T, s *scene.Stack, old *Flight) {
				assert.Equal(t, state.Settings, s.Top().Kind())
				assert.Equal(t, 4, s.Len())
			},
		},
		{
			name: "exit wraps from the top",
			keys: []input.Key{input.KeyUp, input.KeyConfirm},
			check: func(t *testing.T, s *scene.Stack, old *Flight) {
				assert.Equal(t, 1, s.Len())
				assert.Equal(t, state.MainMenu, s.Top().Kind())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			s, f := startFlight(t, e)
			f.progress.Add(300)
			step(t, s, input.Press(input.KeyPause))

			for _, k := range tt.keys {
				step(t, s, input.Press(k))
			}
			tt.check(t, s, f)
		})
	}
}

func TestPause_RestartKeepsCampaign(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()
	s.Push(NewLevelSelect(e.deps))
	s.Push(NewFlight(e.deps, FlightOptions{StartLevel: 4, Campaign: true}))

	step(t, s, input.Press(input.KeyPause))
	step(t, s, input.Press(input.KeyDown))
	step(t, s, input.Press(input.KeyConfirm))

	assert.Equal(t, 3, s.Len())
	f := topFlight(t, s)
	assert.Equal(t, FlightOptions{StartLevel: 4, Campaign: true}, f.Options())
	assert.Equal(t, 8, f.Player().Ammo)
}

func TestPause_ClickRow(t *testing.T) {
	e := newTestEnv(t)
	s, _ := startFlight(t, e)
	step(t, s, input.Press(input.KeyPause))

	// Panel sits at (270, 15); rows start at y 210 every 90 pixels
	step(t, s, input.Frame{Events: []input.Event{input.MouseDownEvent{X: 400, Y: 400}}})
	assert.Equal(t, state.Settings, s.Top().Kind())

	step(t, s, input.Press(input.KeyBack))
	require.Equal(t, state.Pause, s.Top().Kind())
	assert.Equal(t, optOptions, s.Top().(*Pause).Selected())
}

func TestPause_DrawsOverFlight(t *testing.T) {
	e := newTestEnv(t)
	s, _ := startFlight(t, e)
	step(t, s, input.Press(input.KeyPause))

	r := &recordingRenderer{}
	s.Draw(r)

	require.NotEmpty(t, r.calls)
	assert.Equal(t, "space_background", r.calls[0].sprite)

	panel := -1
	for i, c := range r.calls {
		if c.sprite == "pause_menu" {
			panel = i
		}
	}
	require.Positive(t, panel)
	assert.Equal(t, drawCall{sprite: "pause_menu", x: 270, y: 15}, r.calls[panel])
	backgrounds := 0
	for _, c := range r.calls {
		if c.sprite == "space_background" {
			backgrounds++
		}
	}
	assert.Equal(t, 1, backgrounds, "the main menu under the flight is not drawn")
	last := r.calls[len(r.calls)-1]
	assert.Equal(t, drawCall{sprite: "cursor", x: 355, y: 210}, last)
}

func TestLevelSelect_StartsCampaign(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()
	step(t, s, input.Press(input.KeyDown))
	step(t, s, input.Press(input.KeyConfirm))
	require.Equal(t, state.LevelSelect, s.Top().Kind())

	step(t, s, input.Press(input.KeyDown, input.KeyDown))
	assert.Equal(t, 3, s.Top().(*LevelSelect).Selected())

	step(t, s, input.Press(input.KeyConfirm))
	f := topFlight(t, s)
	assert.Equal(t, 3, f.Level())
	assert.True(t, f.Options().Campaign)
	assert.Equal(t, "level_3_background", f.Background().Name)
}

func TestLevelSelect_Back(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()
	s.Push(NewLevelSelect(e.deps))

	step(t, s, input.Press(input.KeyBack))
	assert.Equal(t, state.MainMenu, s.Top().Kind())
}

func TestEndGame_ReturnsBelowFlight(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()
	s.Push(NewLevelSelect(e.deps))
	f := NewFlight(e.deps, FlightOptions{StartLevel: 1, Campaign: true})
	s.Push(f)
	f.Player().Lives = 1

	enemy := entity.NewEnemy(300, e.deps.Assets.Load("enemy_plane"), 2)
	enemy.Rect.Top = 549
	f.Combat().AddEnemy(enemy)
	step(t, s, idle)
	require.Equal(t, state.EndGame, s.Top().Kind())

	e.audio.sounds = nil
	step(t, s, idle)
	assert.Equal(t, state.EndGame, s.Top().Kind())

	step(t, s, input.Frame{Events: []input.Event{input.MouseDownEvent{X: 1, Y: 1}}})
	assert.Equal(t, state.LevelSelect, s.Top().Kind())
	assert.Equal(t, []string{"button_click"}, e.audio.sounds)
}

func TestEndGame_Draw(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		won   bool
		title string
	}{
		{false, "Final Score:"},
		{true, "You Win"},
	}
	for _, tt := range tests {
		r := &recordingRenderer{}
		NewEndGame(e.deps, 1250, tt.won).Draw(r)

		require.Len(t, r.calls, 3)
		assert.Equal(t, tt.title, r.calls[0].text)
		assert.Equal(t, "1250", r.calls[1].text)
		assert.Equal(t, drawCall{text: "1250", x: 450, y: 275, anchor: scene.Center}, r.calls[1])
		assert.Equal(t, "Press Enter For Main Menu", r.calls[2].text)
	}
}

func TestSettings_Toggles(t *testing.T) {
	e := newTestEnv(t)
	s := e.stack()
	st := NewSettings(e.deps)
	s.Push(st)
	syncs := e.audio.syncs

	step(t, s, input.Press(input.KeyConfirm))
	assert.False(t, e.deps.Settings.Music)
	assert.True(t, e.deps.Settings.Sound)
	assert.Equal(t, syncs+1, e.audio.syncs)

	step(t, s, input.Press(input.KeyDown))
	step(t, s, input.Press(input.KeyConfirm))
	assert.False(t, e.deps.Settings.Sound)
	assert.Equal(t, syncs+1, e.audio.syncs, "sound toggle leaves music alone")

	r := &recordingRenderer{}
	st.Draw(r)
	var texts []string
	for _, c := range r.calls {
		if c.text != "" {
			texts = append(texts, c.text)
		}
	}
	assert.Equal(t, []string{"Settings", "Music: Off", "Sound: Off", "Back"}, texts)

	step(t, s, input.Press(input.KeyDown))
	step(t, s, input.Press(input.KeyConfirm))
	assert.Equal(t, state.MainMenu, s.Top().Kind())
}
