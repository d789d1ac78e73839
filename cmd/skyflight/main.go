package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyflight/internal/application/game"
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/replay"
	"github.com/younwookim/skyflight/internal/application/screen"
	"github.com/younwookim/skyflight/internal/application/settings"
	"github.com/younwookim/skyflight/internal/application/system"
	"github.com/younwookim/skyflight/internal/infrastructure/assets"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
	"github.com/younwookim/skyflight/internal/infrastructure/render"
	"github.com/younwookim/skyflight/internal/infrastructure/sound"
)

// loadConfig reads configs from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// newGame builds the scene stack on top of deps. A positive level skips the
// menus and starts that campaign level directly.
func newGame(d screen.Deps, clock *system.FrameClock, source input.Source, canvas game.Canvas, level int) *game.Game {
	display := d.Config.Display
	g := game.New(screen.NewRoot(d), clock, source, canvas, display.ScreenWidth, display.ScreenHeight)
	if level > 0 {
		g.Stack().Push(screen.NewFlight(d, screen.FlightOptions{StartLevel: level, Campaign: true}))
	}
	return g
}

// saveRecording saves the recording to filename
func saveRecording(rec *replay.Recorder, filename string) {
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := rec.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, rec.FrameCount())
}

func main() {
	configFlag := flag.String("config", "", "Config directory (default: built-in configs)")
	assetsFlag := flag.String("assets", "assets", "Asset directory holding photos/ and sounds/")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded session headless and print the result")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: current time)")
	levelFlag := flag.Int("level", 0, "Start this campaign level instead of the main menu")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *levelFlag < 0 || *levelFlag > cfg.Levels.Count() {
		log.Fatalf("Level %d out of range 1..%d", *levelFlag, cfg.Levels.Count())
	}
	assetFS := os.DirFS(*assetsFlag)

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		result, err := RunReplay(cfg, assetFS, *data)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := assets.NewStore(assetFS, cfg.Game.Sprites)
	prefs := settings.Default()
	display := cfg.Game.Display
	clock := system.NewFrameClock(display.TPS)

	deps := screen.Deps{
		Config:   cfg.Game,
		Levels:   cfg.Levels,
		Assets:   store,
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(seed)),
		Audio:    sound.NewManager(sound.NewContext(), assetFS, prefs, cfg.Game.Audio.Music),
		Settings: prefs,
	}
	g := newGame(deps, clock, system.NewInputSystem(), render.New(store), *levelFlag)

	var rec *replay.Recorder
	if *recordFlag != "" {
		rec = replay.NewRecorder(seed, *levelFlag)
		g.SetRecorder(rec)
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, seed)
	}

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(g)
	if rec != nil {
		saveRecording(rec, *recordFlag)
	}
	if err != nil {
		log.Fatal(err)
	}
}
