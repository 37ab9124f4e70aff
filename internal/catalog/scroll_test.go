package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsNearEnd(t *testing.T) {
	m := Metrics{ViewportHeight: 600, ScrollOffset: 1000, ContentHeight: 2000}
	assert.True(t, m.NearEnd(400))
	assert.False(t, m.NearEnd(399))
	assert.True(t, Metrics{ViewportHeight: 10, ContentHeight: 5}.NearEnd(0))
}

func TestScrollWatcherAttachReplacesListener(t *testing.T) {
	w := NewScrollWatcher(-1)
	assert.Equal(t, DefaultNearEndThreshold, w.Threshold())

	var first, second int
	sub1 := w.Attach(func() { first++ })
	sub2 := w.Attach(func() { second++ })
	assert.False(t, sub1.Active())
	assert.True(t, sub2.Active())

	near := Metrics{ViewportHeight: 100, ScrollOffset: 0, ContentHeight: 100}
	assert.True(t, w.Check(near))
	assert.True(t, w.Check(near))
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, second, "firing is not debounced")
}

func TestScrollWatcherDetachIsIdempotent(t *testing.T) {
	w := NewScrollWatcher(0)
	w.Detach()
	assert.False(t, w.Attached())

	fired := 0
	sub := w.Attach(func() { fired++ })
	w.Detach()
	w.Detach()
	assert.False(t, sub.Active())
	assert.False(t, w.Check(Metrics{ViewportHeight: 100, ContentHeight: 100}))
	assert.Equal(t, 0, fired)
}

func TestScrollWatcherIgnoresFarFromEnd(t *testing.T) {
	w := NewScrollWatcher(4)
	fired := 0
	w.Attach(func() { fired++ })
	assert.False(t, w.Check(Metrics{ViewportHeight: 10, ScrollOffset: 0, ContentHeight: 40}))
	assert.Equal(t, 0, fired)
}
