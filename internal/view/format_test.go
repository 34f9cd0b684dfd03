package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestScoreClass(t *testing.T) {
	cases := []struct {
		name string
		avg  *float64
		text Tone
		dot  Tone
	}{
		{name: "missing", avg: nil, text: ToneNone, dot: ToneMid},
		{name: "good boundary", avg: f(4.0), text: ToneGood, dot: ToneGood},
		{name: "mid", avg: f(3.99), text: ToneMid, dot: ToneMid},
		{name: "mid boundary", avg: f(2.5), text: ToneMid, dot: ToneMid},
		{name: "bad", avg: f(2.49), text: ToneBad, dot: ToneBad},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, dot := ScoreClass(tc.avg)
			assert.Equal(t, tc.text, text)
			assert.Equal(t, tc.dot, dot)
		})
	}
}

func TestFormat1(t *testing.T) {
	assert.Equal(t, Placeholder, Format1(nil))
	assert.Equal(t, "4.0", Format1(f(4)))
	assert.Equal(t, "3.7", Format1(f(3.66)))
	assert.Equal(t, "3.3", Format1(f(10.0/3)))
	assert.Equal(t, "2.5", Format1(f(2.45)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, Placeholder, Percent(0, 0))
	assert.Equal(t, "50%", Percent(1, 2))
	assert.Equal(t, "67%", Percent(2, 3))
	assert.Equal(t, "0%", Percent(0, 4))
	assert.Equal(t, "100%", Percent(3, 3))
}

func TestRetakeDetail(t *testing.T) {
	assert.Equal(t, Placeholder, RetakeDetail(0, 0))
	assert.Equal(t, "33% (Да: 1 / 3)", RetakeDetail(1, 3))
}
