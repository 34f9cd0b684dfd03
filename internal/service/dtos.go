package service

import (
	"time"

	"github.com/godilite/profdir/internal/sheet"
)

// Top-N sizes. Card sizes are stored on the aggregate at finalization,
// detail sizes are projected from the retained tallies on demand.
const (
	CardTopTags       = 3
	CardTopAttendance = 3
	CardTopGrades     = 4

	DetailTopTags       = 12
	DetailTopAttendance = 8
	DetailTopGrades     = 8
)

// ProfessorAggregate summarises every response about one professor.
type ProfessorAggregate struct {
	Name  string
	Count int

	QualitySum    float64
	QualityN      int
	StrictnessSum float64
	StrictnessN   int

	RetakeYes int
	RetakeN   int

	Attendance *Tally
	Grades     *Tally
	Tags       *Tally

	// Derived on finalization. Nil means no samples.
	AvgQuality    *float64
	AvgStrictness *float64
	RetakePct     *float64

	TopTags       []Entry
	TopAttendance []Entry
	TopGrades     []Entry
}

// Snapshot is the result of one successful load.
type Snapshot struct {
	Records    []sheet.Record
	Professors []ProfessorAggregate
	Delimiter  byte
	LoadedAt   time.Time
}

func (s *Snapshot) TotalResponses() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func (s *Snapshot) TotalProfessors() int {
	if s == nil {
		return 0
	}
	return len(s.Professors)
}
