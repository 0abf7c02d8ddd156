package debug

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fake() *Debug {
	d := New()
	fps := int32(58)
	d.fps = func() int32 { fps++; return fps }
	d.readMem = func(m *runtime.MemStats) { m.Alloc = 3 * 1024 * 1024 }
	return d
}

func TestLinesHiddenByDefault(t *testing.T) {
	d := fake()
	assert.Empty(t, d.Lines())

	d.Selection = func() string { return "3/25 fire" }
	assert.Equal(t, []string{"3/25 fire"}, d.Lines())
}

func TestLinesRefreshInterval(t *testing.T) {
	d := fake()
	d.ShowFPS = true
	d.ShowMemAlloc = true

	assert.Equal(t, []string{"FPS: 59", "Mem: 3.00 MiB"}, d.Lines())
	for i := 0; i < updateInterval-2; i++ {
		assert.Equal(t, "FPS: 59", d.Lines()[0])
	}
	assert.Equal(t, "FPS: 60", d.Lines()[0], "refreshed on the interval frame")
}
