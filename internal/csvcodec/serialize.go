package csvcodec

import "strings"

// Serialize renders records as CSV text.
//
// The header is taken from the first record only: columns that appear solely
// in later records are dropped and columns missing from a later record are
// written empty. Rows are separated by "\n" without a trailing newline.
func Serialize(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	header := records[0].Columns()

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))

	for _, record := range records {
		sb.WriteByte('\n')
		for i, column := range header {
			if i > 0 {
				sb.WriteByte(',')
			}
			if v, ok := record.Get(column); ok {
				sb.WriteString(Escape(v.String()))
			}
		}
	}

	return sb.String()
}

// Escape quotes s when it contains a comma, a double quote or a newline.
func Escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
