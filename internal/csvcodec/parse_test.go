package csvcodec_test

import (
	"testing"

	"github.com/Miguelburitica/accounts-project/internal/csvcodec"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func requireValue(t *testing.T, record csvcodec.Record, column string, expected csvcodec.Value) {
	t.Helper()

	got, ok := record.Get(column)
	require.True(t, ok, "column %q missing", column)
	require.Equal(t, expected.Kind(), got.Kind(), "column %q kind", column)
	require.True(t, expected.Equal(got), "column %q: want %s, got %s", column, expected, got)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		field    string
		expected csvcodec.Value
	}{
		"true literal":      {field: "true", expected: csvcodec.BoolValue(true)},
		"false literal":     {field: "false", expected: csvcodec.BoolValue(false)},
		"capitalised bool":  {field: "True", expected: csvcodec.TextValue("True")},
		"integer":           {field: "150000", expected: csvcodec.IntValue(150000)},
		"decimal":           {field: "25.5", expected: csvcodec.NumberValue(decimal.RequireFromString("25.5"))},
		"negative":          {field: "-50000", expected: csvcodec.IntValue(-50000)},
		"zero":              {field: "0", expected: csvcodec.IntValue(0)},
		"empty":             {field: "", expected: csvcodec.TextValue("")},
		"date stays text":   {field: "2024-01-15", expected: csvcodec.TextValue("2024-01-15")},
		"word stays text":   {field: "expense", expected: csvcodec.TextValue("expense")},
		"padded number":     {field: " 15 ", expected: csvcodec.IntValue(15)},
		"thousands grouped": {field: "1,000", expected: csvcodec.TextValue("1,000")},
	}

	for name, test := range tests {
		name, test := name, test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := csvcodec.Classify(test.field)
			require.Equal(t, test.expected.Kind(), got.Kind())
			require.True(t, test.expected.Equal(got), "want %s, got %s", test.expected, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for empty input", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, csvcodec.Parse(""))
		require.Empty(t, csvcodec.Parse("   \n  "))
	})

	t.Run("returns nothing for a header only", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, csvcodec.Parse("id,name,amount"))
		require.Empty(t, csvcodec.Parse("id,name,amount\n"))
	})

	t.Run("parses periods with typed values", func(t *testing.T) {
		t.Parallel()

		text := `id,start_date,end_date,status,liquid_assets_start,liquid_assets_end,total_receivables,total_budget,total_actual,variance,notes
1,2024-01-01,2024-01-15,completed,1000000,1200000,500000,800000,750000,50000,"Test notes"
2,2024-01-16,2024-01-31,active,1200000,0,500000,800000,400000,400000,""`

		records := csvcodec.Parse(text)

		require.Len(t, records, 2)
		require.Equal(t, 11, records[0].Len())
		requireValue(t, records[0], "id", csvcodec.IntValue(1))
		requireValue(t, records[0], "status", csvcodec.TextValue("completed"))
		requireValue(t, records[0], "liquid_assets_start", csvcodec.IntValue(1000000))
		requireValue(t, records[0], "notes", csvcodec.TextValue("Test notes"))
		requireValue(t, records[1], "id", csvcodec.IntValue(2))
		requireValue(t, records[1], "liquid_assets_end", csvcodec.IntValue(0))
		requireValue(t, records[1], "notes", csvcodec.TextValue(""))
	})

	t.Run("parses booleans and blank optional fields", func(t *testing.T) {
		t.Parallel()

		text := `id,category,subcategory,amount,due_date,frequency,is_active
1,Food,,300000,,biweekly,true
2,Utilities,Electricity,150000,15,monthly,true
3,Entertainment,Movies,100000,,monthly,false`

		records := csvcodec.Parse(text)

		require.Len(t, records, 3)
		requireValue(t, records[0], "subcategory", csvcodec.TextValue(""))
		requireValue(t, records[0], "due_date", csvcodec.TextValue(""))
		requireValue(t, records[1], "due_date", csvcodec.IntValue(15))
		requireValue(t, records[0], "is_active", csvcodec.BoolValue(true))
		requireValue(t, records[2], "is_active", csvcodec.BoolValue(false))
	})

	t.Run("short rows fill missing columns with empty text", func(t *testing.T) {
		t.Parallel()

		records := csvcodec.Parse("id,name,amount\n1,Test")

		require.Len(t, records, 1)
		requireValue(t, records[0], "name", csvcodec.TextValue("Test"))
		requireValue(t, records[0], "amount", csvcodec.TextValue(""))
	})

	t.Run("rows never gain columns the header lacks", func(t *testing.T) {
		t.Parallel()

		records := csvcodec.Parse("id,name\n1,Test,extra\n2,Another")

		require.Len(t, records, 2)
		require.Equal(t, []string{"id", "name"}, records[0].Columns())
		require.False(t, records[0].Has("amount"))
	})

	t.Run("malformed rows still parse best effort", func(t *testing.T) {
		t.Parallel()

		text := `id,name,amount
1,Test,1000
2,"Unclosed quote,2000
3,Normal,3000`

		records := csvcodec.Parse(text)

		require.Len(t, records, 3)
		requireValue(t, records[0], "id", csvcodec.IntValue(1))
		requireValue(t, records[0], "name", csvcodec.TextValue("Test"))
		requireValue(t, records[1], "name", csvcodec.TextValue("Unclosed quote,2000"))
		requireValue(t, records[1], "amount", csvcodec.TextValue(""))
		requireValue(t, records[2], "amount", csvcodec.IntValue(3000))
	})

	t.Run("duplicate headers keep the last value", func(t *testing.T) {
		t.Parallel()

		records := csvcodec.Parse("id,name,name\n1,first,second")

		require.Len(t, records, 1)
		require.Equal(t, []string{"id", "name"}, records[0].Columns())
		requireValue(t, records[0], "name", csvcodec.TextValue("second"))
	})

	t.Run("handles windows line endings", func(t *testing.T) {
		t.Parallel()

		records := csvcodec.Parse("id,flag\r\n1,true\r\n2,false\r\n")

		require.Len(t, records, 2)
		requireValue(t, records[0], "flag", csvcodec.BoolValue(true))
		requireValue(t, records[1], "flag", csvcodec.BoolValue(false))
	})
}
