// Package sound plays background music and sound effects with ebiten's
// audio package, following the process-wide audio settings.
package sound

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/younwookim/skyflight/internal/application/settings"
)

const sampleRate = 48000

// NewContext creates the process's single audio context
func NewContext() *audio.Context {
	return audio.NewContext(sampleRate)
}

// Manager owns every audio player. Files live at sounds/<name>.mp3.
// A file that fails to load is reported once and then stays silent.
type Manager struct {
	ctx      *audio.Context
	fsys     fs.FS
	settings *settings.Audio
	music    string

	sounds  map[string]*audio.Player
	current *audio.Player
	failed  map[string]bool
}

// NewManager creates a manager. music names the looping background track.
func NewManager(ctx *audio.Context, fsys fs.FS, s *settings.Audio, music string) *Manager {
	return &Manager{
		ctx:      ctx,
		fsys:     fsys,
		settings: s,
		music:    music,
		sounds:   make(map[string]*audio.Player),
		failed:   make(map[string]bool),
	}
}

func soundPath(name string) string {
	return fmt.Sprintf("sounds/%s.mp3", name)
}

// PlaySound plays a one-shot effect if sound is enabled
func (m *Manager) PlaySound(name string) bool {
	if m.settings != nil && !m.settings.Sound {
		return false
	}
	p := m.sounds[name]
	if p == nil {
		var err error
		p, err = m.load(name, false)
		if err != nil {
			return false
		}
		m.sounds[name] = p
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: failed to rewind %s: %v", name, err)
	}
	p.Play()
	return true
}

// Sync starts or pauses the background music to match the settings
func (m *Manager) Sync() {
	if m.settings != nil && !m.settings.Music {
		if m.current != nil {
			m.current.Pause()
		}
		return
	}
	if m.current == nil {
		p, err := m.load(m.music, true)
		if err != nil {
			return
		}
		m.current = p
	}
	if !m.current.IsPlaying() {
		m.current.Play()
	}
}

// MusicPlaying reports whether the background track is playing
func (m *Manager) MusicPlaying() bool {
	return m.current != nil && m.current.IsPlaying()
}

func (m *Manager) load(name string, loop bool) (*audio.Player, error) {
	if name == "" || m.failed[name] {
		return nil, fmt.Errorf("audio %q unavailable", name)
	}
	p, err := m.open(name, loop)
	if err != nil {
		m.failed[name] = true
		log.Printf("audio: %v, continuing without sound", err)
		return nil, err
	}
	return p, nil
}

func (m *Manager) open(name string, loop bool) (*audio.Player, error) {
	if m.fsys == nil {
		return nil, fmt.Errorf("no asset directory for %s", name)
	}
	path := soundPath(name)
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if m.ctx == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	stream, err := mp3.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if loop {
		return m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return m.ctx.NewPlayer(stream)
}
