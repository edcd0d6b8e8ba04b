package csvcodec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Miguelburitica/accounts-project/internal/csvcodec"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func record(pairs ...any) csvcodec.Record {
	r := csvcodec.NewRecord(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(csvcodec.Value))
	}
	return r
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	t.Run("empty input gives empty output", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "", csvcodec.Serialize(nil))
		require.Equal(t, "", csvcodec.Serialize([]csvcodec.Record{}))
	})

	t.Run("writes header and rows without trailing newline", func(t *testing.T) {
		t.Parallel()

		got := csvcodec.Serialize([]csvcodec.Record{
			record("id", csvcodec.IntValue(1), "name", csvcodec.TextValue("Test"), "amount", csvcodec.IntValue(1000)),
		})

		require.Equal(t, "id,name,amount\n1,Test,1000", got)
	})

	t.Run("escapes commas and quotes", func(t *testing.T) {
		t.Parallel()

		got := csvcodec.Serialize([]csvcodec.Record{
			record("id", csvcodec.IntValue(1), "name", csvcodec.TextValue("Test, with comma")),
			record("id", csvcodec.IntValue(2), "name", csvcodec.TextValue(`has "quotes"`)),
		})

		require.Equal(t, "id,name\n1,\"Test, with comma\"\n2,\"has \"\"quotes\"\"\"", got)
	})

	t.Run("header comes from the first record only", func(t *testing.T) {
		t.Parallel()

		got := csvcodec.Serialize([]csvcodec.Record{
			record("id", csvcodec.IntValue(1), "name", csvcodec.TextValue("a")),
			record("id", csvcodec.IntValue(2), "extra", csvcodec.TextValue("dropped")),
		})

		require.Equal(t, "id,name\n1,a\n2,", got)
	})

	t.Run("null renders empty", func(t *testing.T) {
		t.Parallel()

		got := csvcodec.Serialize([]csvcodec.Record{
			record("id", csvcodec.IntValue(1), "optional_field", csvcodec.NullValue(), "normal_field", csvcodec.TextValue("value")),
		})

		require.Equal(t, "id,optional_field,normal_field\n1,,value", got)
	})
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value    string
		expected string
	}{
		"simple":  {value: "simple", expected: "simple"},
		"comma":   {value: "has, comma", expected: `"has, comma"`},
		"quotes":  {value: `has "quotes"`, expected: `"has ""quotes"""`},
		"newline": {value: "two\nlines", expected: "\"two\nlines\""},
		"empty":   {value: "", expected: ""},
	}

	for name, test := range tests {
		name, test := name, test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, test.expected, csvcodec.Escape(test.value))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("preserves values and kinds", func(t *testing.T) {
		t.Parallel()

		original := []csvcodec.Record{
			record(
				"id", csvcodec.IntValue(1),
				"amount", csvcodec.IntValue(1000000),
				"percentage", csvcodec.NumberValue(decimal.RequireFromString("25.5")),
				"count", csvcodec.IntValue(0),
				"is_active", csvcodec.BoolValue(true),
				"description", csvcodec.TextValue(`Lunch with "colleagues", very nice`),
			),
			record(
				"id", csvcodec.IntValue(2),
				"amount", csvcodec.IntValue(500000),
				"percentage", csvcodec.IntValue(0),
				"count", csvcodec.IntValue(10),
				"is_active", csvcodec.BoolValue(false),
				"description", csvcodec.TextValue("Test Account with, comma"),
			),
		}

		parsed := csvcodec.Parse(csvcodec.Serialize(original))

		require.Len(t, parsed, len(original))
		for i := range original {
			for _, column := range original[i].Columns() {
				want, _ := original[i].Get(column)
				requireValue(t, parsed[i], column, want)
			}
		}
	})

	t.Run("null becomes empty text", func(t *testing.T) {
		t.Parallel()

		parsed := csvcodec.Parse(csvcodec.Serialize([]csvcodec.Record{
			record("id", csvcodec.IntValue(1), "optional_field", csvcodec.NullValue(), "normal_field", csvcodec.TextValue("value")),
		}))

		require.Len(t, parsed, 1)
		requireValue(t, parsed[0], "optional_field", csvcodec.TextValue(""))
		requireValue(t, parsed[0], "normal_field", csvcodec.TextValue("value"))
	})

	t.Run("numeric looking text comes back as a number", func(t *testing.T) {
		t.Parallel()

		parsed := csvcodec.Parse(csvcodec.Serialize([]csvcodec.Record{
			record("code", csvcodec.TextValue("15")),
		}))

		requireValue(t, parsed[0], "code", csvcodec.IntValue(15))
	})

	t.Run("large datasets", func(t *testing.T) {
		t.Parallel()

		original := make([]csvcodec.Record, 0, 1000)
		for i := 0; i < 1000; i++ {
			kind := "expense"
			if i%2 == 1 {
				kind = "income"
			}
			original = append(original, record(
				"id", csvcodec.IntValue(int64(i+1)),
				"period_id", csvcodec.IntValue(int64(i/100+1)),
				"date", csvcodec.TextValue(fmt.Sprintf("2024-01-%02d", i%28+1)),
				"type", csvcodec.TextValue(kind),
				"description", csvcodec.TextValue(fmt.Sprintf("Transaction %d with some description", i+1)),
				"variance_flag", csvcodec.BoolValue(i%10 == 0),
			))
		}

		text := csvcodec.Serialize(original)
		require.Len(t, strings.Split(text, "\n"), 1001)

		parsed := csvcodec.Parse(text)
		require.Len(t, parsed, 1000)
		requireValue(t, parsed[0], "id", csvcodec.IntValue(1))
		requireValue(t, parsed[999], "id", csvcodec.IntValue(1000))
		requireValue(t, parsed[0], "type", csvcodec.TextValue("expense"))
		requireValue(t, parsed[1], "type", csvcodec.TextValue("income"))
	})
}
