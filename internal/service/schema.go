package service

// Schema names the sheet columns the aggregator reads. Header names are
// matched verbatim against the trimmed header row.
type Schema struct {
	Professor  string
	Quality    string
	Strictness string
	Retake     string
	Attendance string
	Grade      string
	Tag        string

	// Affirmative is the retake answer counted as "yes", compared case-insensitively.
	Affirmative string
}

// DefaultSchema returns the column names of the published survey form.
func DefaultSchema() Schema {
	return Schema{
		Professor:   "Chose your professor",
		Quality:     "Общее качество",
		Strictness:  "Уровень строгости",
		Retake:      "Взяли бы вы курс у этого преподавателя снова?",
		Attendance:  "Посещение и отметка?",
		Grade:       "Оценка которую вы получили у этого преподавателя?",
		Tag:         "Выберите тег который близко описывает преподавателя",
		Affirmative: "да",
	}
}
