package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 25, cx)
	assert.Equal(t, 40, cy)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"at right edge (exclusive)", 30, 15, false},
		{"at bottom edge (exclusive)", 15, 30, false},
		{"outside left", 5, 15, false},
		{"outside above", 15, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)

	inner := outer.CenteredIn(6, 4)

	assert.Equal(t, NewRect(7, 3, 6, 4), inner)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 0, Clamp(0, 0, 10))
	assert.Equal(t, 10, Clamp(10, 0, 10))
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		assert.True(t, a.IsMove(), a.String())
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionEnd, ActionPause, ActionQuit} {
		assert.False(t, a.IsMove(), a.String())
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.False(t, f.Has(ActionLeft))

	f.Set(ActionLeft)
	assert.True(t, f.Has(ActionLeft))
	f.Clear()
	assert.False(t, f.Has(ActionLeft))

	var zero InputFrame
	assert.False(t, zero.Has(ActionUp))
	zero.Set(ActionUp)
	assert.True(t, zero.Has(ActionUp))
}
