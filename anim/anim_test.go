package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalProgress(t *testing.T) {
	start := time.Unix(100, 0)
	n := Normal{}
	n.SetDuration(300 * time.Millisecond)
	n.Start(start)

	assert.Equal(t, float32(0), n.ProgressAt(start))
	assert.InDelta(t, 0.5, n.ProgressAt(start.Add(150*time.Millisecond)), 0.001)
	assert.Equal(t, float32(1), n.ProgressAt(start.Add(time.Second)))
	assert.True(t, n.Animating(start.Add(100*time.Millisecond)))
	assert.False(t, n.Animating(start.Add(300*time.Millisecond)))
}

func TestZeroDurationIsComplete(t *testing.T) {
	n := Normal{}
	n.Start(time.Unix(5, 0))
	assert.Equal(t, float32(1), n.ProgressAt(time.Unix(5, 0)))
	assert.False(t, n.Animating(time.Unix(5, 0)))
}

func TestEaseOut(t *testing.T) {
	assert.Equal(t, float32(0), EaseOut(-1))
	assert.Equal(t, float32(1), EaseOut(2))
	assert.InDelta(t, 0.75, EaseOut(0.5), 0.0001)
	assert.Greater(t, EaseOut(0.25), float32(0.25))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(-64), Lerp(-64, 0, 0))
	assert.Equal(t, float32(-32), Lerp(-64, 0, 0.5))
	assert.Equal(t, float32(0), Lerp(-64, 0, 1))
}
