package service

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/godilite/profdir/internal/sheet"
)

// ToNumber parses a rating cell. A comma decimal separator is accepted.
// Blank, unparsable and non-finite values report false.
func ToNumber(s string) (float64, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// SplitTags splits a tag cell on ';' and ','. When nothing but separators is
// present the whole trimmed cell is returned as the only tag.
func SplitTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ',' }) {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return []string{raw}
	}
	return tags
}

// Aggregate groups records by professor in one pass. Output order is the
// order in which each professor was first seen. Records without a professor
// name are skipped.
func Aggregate(records []sheet.Record, schema Schema) []ProfessorAggregate {
	fold := cases.Fold()
	affirmative := fold.String(strings.TrimSpace(schema.Affirmative))

	index := make(map[string]int)
	aggs := make([]ProfessorAggregate, 0)

	for _, r := range records {
		name := strings.TrimSpace(r[schema.Professor])
		if name == "" {
			continue
		}

		i, ok := index[name]
		if !ok {
			i = len(aggs)
			index[name] = i
			aggs = append(aggs, ProfessorAggregate{
				Name:       name,
				Attendance: NewTally(),
				Grades:     NewTally(),
				Tags:       NewTally(),
			})
		}
		a := &aggs[i]
		a.Count++

		if q, ok := ToNumber(r[schema.Quality]); ok {
			a.QualitySum += q
			a.QualityN++
		}
		if s, ok := ToNumber(r[schema.Strictness]); ok {
			a.StrictnessSum += s
			a.StrictnessN++
		}

		if again := strings.TrimSpace(r[schema.Retake]); again != "" {
			a.RetakeN++
			if fold.String(again) == affirmative {
				a.RetakeYes++
			}
		}

		a.Attendance.Inc(strings.TrimSpace(r[schema.Attendance]))
		a.Grades.Inc(strings.TrimSpace(r[schema.Grade]))
		for _, tag := range SplitTags(r[schema.Tag]) {
			a.Tags.Inc(tag)
		}
	}

	for i := range aggs {
		aggs[i].finalize()
	}
	return aggs
}

func (a *ProfessorAggregate) finalize() {
	a.AvgQuality = mean(a.QualitySum, a.QualityN)
	a.AvgStrictness = mean(a.StrictnessSum, a.StrictnessN)
	if a.RetakeN > 0 {
		pct := float64(a.RetakeYes) / float64(a.RetakeN) * 100
		a.RetakePct = &pct
	}

	a.TopTags = TopN(a.Tags, CardTopTags)
	a.TopAttendance = TopN(a.Attendance, CardTopAttendance)
	a.TopGrades = TopN(a.Grades, CardTopGrades)
}

func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}
