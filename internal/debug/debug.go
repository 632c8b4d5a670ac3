package debug

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// updateInterval: text is only rebuilt every N frames to limit allocations.
const updateInterval = 30

// fpsSmoothing is the weight of the newest frame in the moving FPS average.
const fpsSmoothing = 0.1

// Stats tracks frame rate, heap usage and scene size for the optional
// overlay. It carries no diagnostics; reload errors go to the log only.
type Stats struct {
	frameCount uint32
	fps        float64
	points     int
	lines      int
	text       []string
	memStats   runtime.MemStats
	readMem    func(*runtime.MemStats)
}

// New returns Stats with an empty overlay; text appears after the first Tick.
func New() *Stats {
	return &Stats{readMem: runtime.ReadMemStats}
}

// Tick records one frame of length dt showing the given primitive counts.
func (s *Stats) Tick(dt time.Duration, points, lines int) {
	s.frameCount++
	if dt > 0 {
		inst := float64(time.Second) / float64(dt)
		if s.fps == 0 {
			s.fps = inst
		} else {
			s.fps += fpsSmoothing * (inst - s.fps)
		}
	}
	changed := points != s.points || lines != s.lines
	s.points, s.lines = points, lines
	if s.text == nil || changed || s.frameCount%updateInterval == 0 {
		s.refresh()
	}
}

func (s *Stats) refresh() {
	s.readMem(&s.memStats)
	s.text = []string{
		fmt.Sprintf("FPS: %.0f", s.fps),
		fmt.Sprintf("Mem: %s", humanize.IBytes(s.memStats.Alloc)),
		fmt.Sprintf("Points: %s  Lines: %s", humanize.Comma(int64(s.points)), humanize.Comma(int64(s.lines))),
	}
}

// FPS returns the smoothed frame rate.
func (s *Stats) FPS() float64 { return s.fps }

// Lines returns the overlay text as of the last refresh.
func (s *Stats) Lines() []string { return s.text }
