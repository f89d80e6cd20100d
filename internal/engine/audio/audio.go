// Package audio plays the looping ambient soundtrack.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and the ambient track.
//
// Mute silences the track without stopping it. Pause freezes playback
// position, and is driven by the simulation pause.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	track  beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
	path   string

	level  float64 // 0.0 to 1.0
	muted  bool
	paused bool
}

// New creates a manager with the given volume and mute state.
func New(level float64, muted bool) *Manager {
	return &Manager{
		level: clamp(level, 0, 1),
		muted: muted,
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Close stops playback and releases the track.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	if m.initialized {
		speaker.Close()
	}
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// PlayAmbient loads a WAV file and loops it until Stop or Close.
func (m *Manager) PlayAmbient(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}
	m.stopInternal()

	track, format, err := openWAV(path)
	if err != nil {
		return err
	}

	m.track = track
	m.path = path
	m.ctrl = &beep.Ctrl{Streamer: ambientStream(track, format.SampleRate, m.sampleRate), Paused: m.paused}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 10}
	m.applyVolume()

	speaker.Play(m.volume)
	return nil
}

func openWAV(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	track, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return track, format, nil
}

// Stop ends the ambient track.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.initialized {
		speaker.Clear()
	}
	if m.track != nil {
		m.track.Close()
		m.track = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.path = ""
}

// Path returns the playing track, or "" if none.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = clamp(level, 0, 1)
	m.applyVolume()
}

// Volume returns the volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

// SetMuted silences or restores the track.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.applyVolume()
}

// ToggleMute flips the mute state and returns it.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.applyVolume()
	return m.muted
}

// Muted reports whether the track is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// SetPaused freezes or resumes the track position.
func (m *Manager) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = paused
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// Paused reports whether playback is paused.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	speaker.Lock()
	m.volume.Silent = m.muted || m.level <= 0
	m.volume.Volume = gainExponent(m.level)
	speaker.Unlock()
}

// gainExponent converts a linear 0-1 level into the base-10 exponent used
// by effects.Volume, so the applied gain equals the level.
func gainExponent(level float64) float64 {
	if level <= 0 {
		return -10 // silent regardless of Silent
	}
	return math.Log10(level)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ambientStream loops track and converts it to the speaker rate. Looping
// happens before resampling since a Resampler stays drained once its
// source ends.
func ambientStream(track beep.StreamSeeker, from, to beep.SampleRate) beep.Streamer {
	var out beep.Streamer = &loopStreamer{source: track}
	if from != to {
		out = beep.Resample(4, from, to, out)
	}
	return out
}

// loopStreamer rewinds source whenever it runs dry.
type loopStreamer struct {
	source beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	rewound := false
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		if n > 0 {
			rewound = false
			if ok {
				continue
			}
		}
		// A source that yields nothing right after a rewind never will.
		if rewound || l.source.Len() == 0 {
			break
		}
		if err := l.source.Seek(0); err != nil {
			break
		}
		rewound = true
	}
	return filled, filled > 0
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
