package csvcodec

import "strings"

// Parse reads CSV text into records keyed by the header row.
//
// Input with fewer than two lines yields no records. Rows shorter than the
// header get empty text for the missing columns and extra fields are ignored;
// structurally odd rows degrade to a partial mapping instead of failing.
func Parse(text string) []Record {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil
	}

	header := SplitLine(lines[0])
	records := make([]Record, 0, len(lines)-1)

	for _, line := range lines[1:] {
		fields := SplitLine(line)
		record := NewRecord(len(header))
		for i, column := range header {
			field := ""
			if i < len(fields) {
				field = fields[i]
			}
			record.Set(column, Classify(field))
		}
		records = append(records, record)
	}

	return records
}
