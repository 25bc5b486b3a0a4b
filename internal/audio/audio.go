package audio

import (
	"bench3d/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager plays short named cues (pickup, drop, attach). When the audio
// device can't be opened the manager stays usable and plays nothing, so the
// sim runs fine on headless machines.
type Manager struct {
	enabled bool
	cues    map[string]rl.Sound
}

func NewManager() *Manager {
	m := &Manager{cues: make(map[string]rl.Sound)}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		logger.L().Warn("audio device unavailable; cues disabled")
		return m
	}
	m.enabled = true
	return m
}

// LoadCue binds a cue name to a sound file. Missing files are logged and the
// cue stays silent.
func (m *Manager) LoadCue(name, path string) {
	if !m.enabled {
		return
	}
	sound := rl.LoadSound(path)
	if sound.FrameCount == 0 {
		logger.L().WithField("path", path).Warnf("cue %q failed to load", name)
		return
	}
	m.cues[name] = sound
}

// PlayCue implements the interaction cue port.
func (m *Manager) PlayCue(name string) {
	if !m.enabled {
		return
	}
	if sound, ok := m.cues[name]; ok {
		rl.PlaySound(sound)
	}
}

func (m *Manager) Close() {
	for _, sound := range m.cues {
		rl.UnloadSound(sound)
	}
	m.cues = nil
	if m.enabled {
		rl.CloseAudioDevice()
		m.enabled = false
	}
}
