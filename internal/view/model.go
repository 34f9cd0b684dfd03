package view

import (
	"fmt"

	"github.com/godilite/profdir/internal/service"
)

// Score is one formatted statistic with its sample count.
type Score struct {
	Value   string
	Samples int
	Tone    Tone
	Dot     Tone
}

// Card is the compact list view of a professor.
type Card struct {
	Name      string
	Responses int
	Retake    string
	Quality   Score
	Strict    Score
	Tags      []service.Entry
}

// Table is a two column frequency table.
type Table struct {
	Title       string
	KeyHeader   string
	CountHeader string
	Rows        []service.Entry
}

// Detail is the expanded view of a professor.
type Detail struct {
	Title    string
	Subtitle string
	Quality  Score
	Strict   Score
	Tables   []Table
}

// Page is everything the directory listing shows.
type Page struct {
	TotalResponses  int
	TotalProfessors int
	FormURL         string
	ReportURL       string
	Cards           []Card
}

func qualityScore(a service.ProfessorAggregate) Score {
	text, dot := ScoreClass(a.AvgQuality)
	return Score{Value: Format1(a.AvgQuality), Samples: a.QualityN, Tone: text, Dot: dot}
}

func strictScore(a service.ProfessorAggregate) Score {
	return Score{Value: Format1(a.AvgStrictness), Samples: a.StrictnessN}
}

func NewCard(a service.ProfessorAggregate) Card {
	return Card{
		Name:      a.Name,
		Responses: a.Count,
		Retake:    Percent(a.RetakeYes, a.RetakeN),
		Quality:   qualityScore(a),
		Strict:    strictScore(a),
		Tags:      a.TopTags,
	}
}

// NewDetail projects the retained tallies at the detail view sizes.
func NewDetail(a service.ProfessorAggregate) Detail {
	return Detail{
		Title:    a.Name,
		Subtitle: fmt.Sprintf("Отзывов: %d · Снова бы взяли: %s", a.Count, RetakeDetail(a.RetakeYes, a.RetakeN)),
		Quality:  qualityScore(a),
		Strict:   strictScore(a),
		Tables: []Table{
			{Title: "Теги", KeyHeader: "Тег", CountHeader: "Кол-во", Rows: service.TopN(a.Tags, service.DetailTopTags)},
			{Title: "Посещение", KeyHeader: "Вариант", CountHeader: "Кол-во", Rows: service.TopN(a.Attendance, service.DetailTopAttendance)},
			{Title: "Оценки", KeyHeader: "Оценка", CountHeader: "Кол-во", Rows: service.TopN(a.Grades, service.DetailTopGrades)},
		},
	}
}

// NewPage builds the listing from the visible aggregates and snapshot totals.
func NewPage(snap *service.Snapshot, visible []service.ProfessorAggregate, formURL, reportURL string) Page {
	cards := make([]Card, len(visible))
	for i, a := range visible {
		cards[i] = NewCard(a)
	}
	return Page{
		TotalResponses:  snap.TotalResponses(),
		TotalProfessors: snap.TotalProfessors(),
		FormURL:         formURL,
		ReportURL:       reportURL,
		Cards:           cards,
	}
}
