package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryPreviousIsLastPush(t *testing.T) {
	var h History
	assert.Equal(t, Sample{}, h.Previous())

	for i := 0; i < 12; i++ {
		s := Sample{X: float64(i), Y: float64(-i), Buttons: ButtonLeft}
		h.Push(s)
		assert.Equal(t, s, h.Previous())
	}
}

func TestHistoryWraps(t *testing.T) {
	var h History
	for i := 0; i < HistorySize*3+2; i++ {
		h.Push(Sample{X: float64(i)})
	}
	assert.Equal(t, 2, h.next)
	assert.Equal(t, float64(HistorySize*3+1), h.Previous().X)
}

func TestButtonsPaint(t *testing.T) {
	assert.False(t, Buttons(0).Paint())
	assert.False(t, ButtonMiddle.Paint())
	assert.True(t, ButtonLeft.Paint())
	assert.True(t, ButtonRight.Paint())
	assert.True(t, (ButtonLeft | ButtonMiddle).Paint())
	assert.True(t, (ButtonLeft | ButtonRight).Has(ButtonRight))
	assert.False(t, ButtonLeft.Has(ButtonRight))
	assert.False(t, ButtonLeft.Has(0))
}

func TestStateSampleScalesByDensity(t *testing.T) {
	s := State{X: 10, Y: 4.5, Buttons: ButtonRight, Density: 2}
	assert.Equal(t, Sample{X: 20, Y: 9, Buttons: ButtonRight}, s.Sample())

	s.Density = 0
	assert.Equal(t, Sample{X: 10, Y: 4.5, Buttons: ButtonRight}, s.Sample())
}

func TestEventShortcutFoldsCase(t *testing.T) {
	e := Event{Kind: KindKey, Rune: 'S', Modifiers: ModControl | ModShift}
	assert.Equal(t, Shortcut{Rune: 's', Modifiers: ModControl}, e.Shortcut())

	e = Event{Kind: KindKey, Key: KeyLeft}
	assert.Equal(t, Shortcut{Key: KeyLeft}, e.Shortcut())
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Push(Event{Kind: KindFocus, Focused: true})
	q.Push(Event{Kind: KindWheel, WheelY: -1})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{{Kind: KindFocus, Focused: true}, {Kind: KindWheel, WheelY: -1}}, got)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())
}
