package debug

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	s := New()
	reads := 0
	s.readMem = func(m *runtime.MemStats) {
		reads++
		m.Alloc = 3 << 20
	}

	s.Tick(0, 1, 0)
	require.Len(t, s.Lines(), 3)
	assert.Equal(t, "Mem: 3.0 MiB", s.Lines()[1])
	assert.Equal(t, "Points: 1  Lines: 0", s.Lines()[2])
	assert.Equal(t, 1, reads)

	for i := 0; i < 10; i++ {
		s.Tick(20*time.Millisecond, 1, 0)
	}
	assert.InDelta(t, 50, s.FPS(), 0.01)
	assert.Equal(t, 1, reads, "text is cached between refreshes")

	s.Tick(20*time.Millisecond, 2000, 1)
	assert.Equal(t, 2, reads, "scene size change refreshes immediately")
	assert.Equal(t, "Points: 2,000  Lines: 1", s.Lines()[2])
	assert.Equal(t, "FPS: 50", s.Lines()[0])
}

func TestStatsRefreshInterval(t *testing.T) {
	s := New()
	reads := 0
	s.readMem = func(*runtime.MemStats) { reads++ }
	for i := 0; i < updateInterval; i++ {
		s.Tick(time.Millisecond, 0, 0)
	}
	assert.Equal(t, 2, reads)
}
