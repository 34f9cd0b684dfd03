package sheet

import (
	"strings"
)

const (
	Comma = ','
	Tab   = '\t'
)

// DetectDelimiter picks the field separator from the first non-blank line.
// Tab wins only when it strictly outnumbers commas.
func DetectDelimiter(text string) byte {
	var head string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			head = line
			break
		}
	}

	if strings.Count(head, "\t") > strings.Count(head, ",") {
		return Tab
	}
	return Comma
}

// Parse splits text into rows of cells using delimiter.
//
// Quoting follows the usual spreadsheet export rules: a double quote toggles
// quoted mode, a doubled quote inside quotes is a literal quote, and
// delimiters and line breaks inside quotes are data. An unterminated quote is
// not an error; whatever was buffered is emitted. Rows whose cells are all
// blank are dropped.
func Parse(text string, delimiter byte) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	flushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch {
		case ch == '"' && inQuotes && i+1 < len(text) && text[i+1] == '"':
			field.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delimiter && !inQuotes:
			flushField()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			field.WriteByte(ch)
		}
	}
	flushRow()

	out := rows[:0]
	for _, r := range rows {
		if !isBlankRow(r) {
			out = append(out, r)
		}
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
