package csvcodec

import "strings"

// SplitLine splits one CSV line into its fields.
//
// Doubled quotes inside a quoted section produce a literal quote, any other
// quote toggles the quoted state and commas only separate fields outside of
// quotes. Every field is trimmed. An unterminated quote is not an error: the
// rest of the line ends up in the last field.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
