package sheet

import "strings"

// Record is one data row keyed by its trimmed header. Values are kept verbatim.
type Record map[string]string

// ToRecords zips every row after the first against the header row.
// Missing trailing cells become "", cells beyond the header count are dropped
// and a repeated header keeps the right-most value.
func ToRecords(grid [][]string) []Record {
	if len(grid) == 0 {
		return nil
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		rec := make(Record, len(headers))
		for j, h := range headers {
			if j < len(row) {
				rec[h] = row[j]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Decode runs delimiter detection, parsing and objectification on raw sheet text.
// It returns the detected delimiter alongside the records.
func Decode(text string) ([]Record, byte) {
	delimiter := DetectDelimiter(text)
	return ToRecords(Parse(text, delimiter)), delimiter
}
