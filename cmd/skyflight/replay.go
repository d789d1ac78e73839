package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyflight/internal/application/game"
	"github.com/younwookim/skyflight/internal/application/replay"
	"github.com/younwookim/skyflight/internal/application/screen"
	"github.com/younwookim/skyflight/internal/application/settings"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/application/system"
	"github.com/younwookim/skyflight/internal/infrastructure/assets"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

// ReplayResult is where a replayed session ended up
type ReplayResult struct {
	Top    state.Kind
	Score  int
	Level  int
	Lives  int
	Frames int
	Quit   bool
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("state=%s score=%d level=%d lives=%d frames=%d quit=%t",
		r.Top, r.Score, r.Level, r.Lives, r.Frames, r.Quit)
}

// RunReplay plays a recording headless: no window, no sound, sprites sized
// from the asset headers or the placeholder catalog.
func RunReplay(cfg *config.Config, assetFS fs.FS, data replay.ReplayData) (ReplayResult, error) {
	replayer, err := replay.NewReplayer(data)
	if err != nil {
		return ReplayResult{}, err
	}

	clock := system.NewFrameClock(cfg.Game.Display.TPS)
	deps := screen.Deps{
		Config:   cfg.Game,
		Levels:   cfg.Levels,
		Assets:   assets.NewStore(assetFS, cfg.Game.Sprites),
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(replayer.Seed())),
		Audio:    screen.NopAudio{},
		Settings: settings.Default(),
	}
	g := newGame(deps, clock, replayer, nil, replayer.Level())

	var result ReplayResult
	for !replayer.Done() {
		if err := g.Update(); err != nil {
			if !errors.Is(err, ebiten.Termination) {
				return ReplayResult{}, err
			}
			result.Quit = true
			break
		}
	}

	summarize(g, &result)
	result.Frames = replayer.CurrentFrame()
	return result, nil
}

// summarize fills in the top state and the stats of the topmost flight
func summarize(g *game.Game, result *ReplayResult) {
	result.Top = g.Stack().Top().Kind()
	scenes := g.Stack().Scenes()
	for i := len(scenes) - 1; i >= 0; i-- {
		if f, ok := scenes[i].(*screen.Flight); ok {
			result.Score = f.Score()
			result.Level = f.Level()
			result.Lives = f.Player().Lives
			return
		}
	}
}
