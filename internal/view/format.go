package view

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Placeholder stands in for a missing statistic.
const Placeholder = "—"

// Tone is the colour class of a quality score.
type Tone string

const (
	ToneNone Tone = ""
	ToneGood Tone = "good"
	ToneMid  Tone = "mid"
	ToneBad  Tone = "bad"
)

// ScoreClass maps a mean quality to its text and dot tones. A missing mean
// has no text tone and a neutral dot.
func ScoreClass(avg *float64) (text, dot Tone) {
	switch {
	case avg == nil:
		return ToneNone, ToneMid
	case *avg >= 4.0:
		return ToneGood, ToneGood
	case *avg >= 2.5:
		return ToneMid, ToneMid
	default:
		return ToneBad, ToneBad
	}
}

// Format1 prints a mean with one decimal, or Placeholder when missing.
func Format1(n *float64) string {
	if n == nil {
		return Placeholder
	}
	r, err := stats.Round(*n, 1)
	if err != nil {
		return Placeholder
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// Percent formats a retake ratio as a whole percentage.
func Percent(yes, total int) string {
	if total <= 0 {
		return Placeholder
	}
	r, err := stats.Round(float64(yes)/float64(total)*100, 0)
	if err != nil {
		return Placeholder
	}
	return fmt.Sprintf("%d%%", int(r))
}

// RetakeDetail formats the retake answer breakdown shown in the detail header.
func RetakeDetail(yes, total int) string {
	if total <= 0 {
		return Placeholder
	}
	return fmt.Sprintf("%s (Да: %d / %d)", Percent(yes, total), yes, total)
}
