// Package audio plays short notification sounds such as the eclipse chimes.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager mixes sound effects onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume setting (0.0 to 1.0)
	masterVolume float64

	// Mixer for concurrent sounds
	mixer *beep.Mixer
}

// New creates a new audio manager. Nothing is played until Init succeeds.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		mixer:        &beep.Mixer{},
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops all sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0 dB, 0.5 about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// PlayWAV decodes WAV data and plays it once.
func (m *Manager) PlayWAV(data []byte) error {
	s, err := decodeWAV(data, m.sampleRate)
	if err != nil {
		return err
	}
	return m.play(s)
}

// PlayTone plays a fading sine chime at freq hertz.
func (m *Manager) PlayTone(freq float64, d time.Duration) error {
	return m.play(Chime(m.sampleRate, freq, d))
}

func (m *Manager) play(s beep.Streamer) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}

	speaker.Lock()
	m.mixer.Add(&effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
		Silent:   vol <= 0,
	})
	speaker.Unlock()
	return nil
}

// decodeWAV decodes data and resamples it to sr if needed.
func decodeWAV(data []byte, sr beep.SampleRate) (beep.Streamer, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if format.SampleRate != sr {
		return beep.Resample(4, format.SampleRate, sr, streamer), nil
	}
	return streamer, nil
}

// Chime returns a sine tone that decays linearly to silence over d.
func Chime(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &chime{
		step:  freq / float64(sr),
		total: sr.N(d),
	}
}

type chime struct {
	step  float64 // Cycles per sample
	pos   int
	total int
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		env := 1 - float64(c.pos)/float64(c.total)
		v := env * math.Sin(2*math.Pi*c.step*float64(c.pos))
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *chime) Err() error {
	return nil
}
