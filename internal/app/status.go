package app

import (
	"fmt"

	"github.com/Faultbox/heliosim/internal/sim"
)

// StatusLine summarizes a frame for the window title.
func StatusLine(f sim.Frame) string {
	s := fmt.Sprintf("%s | t=%.2f x%.1f", Title, f.Time, f.TimeScale)
	switch {
	case f.Seek != sim.SeekNone:
		s += " | seeking " + f.Seek.String() + " eclipse"
	case f.TimeScale == 0:
		s += " | paused"
	}
	if f.Eclipse.Solar {
		s += " | solar eclipse"
	} else if f.Eclipse.Lunar {
		s += " | lunar eclipse"
	}
	return s
}
