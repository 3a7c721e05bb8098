package app

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heliosim/internal/config"
	"github.com/Faultbox/heliosim/internal/engine/audio"
	"github.com/Faultbox/heliosim/internal/sim"
)

// Synthesized chime pitches, used when no WAV file is configured.
const (
	solarChimeHz  = 660.0
	lunarChimeHz  = 440.0
	chimeDuration = 1500 * time.Millisecond
)

// chimes plays a sound when a seek reaches its eclipse. A nil *chimes is silent.
type chimes struct {
	mgr   *audio.Manager
	solar []byte
	lunar []byte
	log   *zap.Logger
}

func newChimes(cfg config.AudioConfig, log *zap.Logger) *chimes {
	if !cfg.Enabled {
		return nil
	}

	mgr := audio.New()
	mgr.SetMasterVolume(cfg.Volume)
	if err := mgr.Init(); err != nil {
		log.Warn("audio unavailable, chimes disabled", zap.Error(err))
		return nil
	}

	return &chimes{
		mgr:   mgr,
		solar: readChime(cfg.SolarChime, log),
		lunar: readChime(cfg.LunarChime, log),
		log:   log,
	}
}

func readChime(path string, log *zap.Logger) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("chime unavailable, using tone", zap.String("path", path), zap.Error(err))
		return nil
	}
	return data
}

func (c *chimes) play(e sim.Event) {
	if c == nil || e == sim.EventNone {
		return
	}

	data, freq := c.solar, solarChimeHz
	if e == sim.EventLunarEclipse {
		data, freq = c.lunar, lunarChimeHz
	}

	var err error
	if data != nil {
		err = c.mgr.PlayWAV(data)
	} else {
		err = c.mgr.PlayTone(freq, chimeDuration)
	}
	if err != nil {
		c.log.Warn("chime failed", zap.Stringer("event", e), zap.Error(err))
	}
}

func (c *chimes) close() {
	if c != nil {
		c.mgr.Close()
	}
}
