package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorOrder(t *testing.T) {
	c := NewCollector(nil)
	c.Add(Info, 1, 2, 10, "first")
	c.Add(Unsupported, 3, 4, 20, "second %d", 5)

	got := c.Diagnostics()
	assert.Len(t, got, 2)
	assert.Equal(t, Info, got[0].Severity)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, Unsupported, got[1].Severity)
	assert.Equal(t, "second 5", got[1].Message)
	assert.False(t, c.HasFatal())
}

func TestCollectorHasFatal(t *testing.T) {
	c := NewCollector(nil)
	c.Add(Fatal, 0, 0, 0, "corrupt header")
	assert.True(t, c.HasFatal())
}

func TestCollectorForwardsToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))
	c := NewCollector(logger)

	c.Add(Fatal, 9, 42, 128, "corrupt header")

	assert.Contains(t, buf.String(), "corrupt header")
	assert.Contains(t, buf.String(), "class=9")
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		Info:          "info",
		Unsupported:   "unsupported",
		Unimplemented: "unimplemented",
		Fatal:         "fatal",
	}
	for sev, want := range cases {
		assert.Equal(t, want, sev.String())
	}
}
