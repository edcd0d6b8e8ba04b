package csvcodec_test

import (
	"testing"

	"github.com/Miguelburitica/accounts-project/internal/csvcodec"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type status string

type item struct {
	ID       int             `csv:"id"`
	Name     string          `csv:"name"`
	Status   status          `csv:"status"`
	Amount   decimal.Decimal `csv:"amount"`
	DueDate  *int            `csv:"due_date"`
	IsActive bool            `csv:"is_active"`
	Internal string
	Skipped  string `csv:"-"`
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	due := 15
	records, err := csvcodec.MarshalAll([]item{
		{ID: 1, Name: "Food, groceries", Status: "open", Amount: decimal.NewFromInt(300000), IsActive: true, Internal: "x"},
		{ID: 2, Name: "Power", Amount: decimal.RequireFromString("150000.50"), DueDate: &due},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, []string{"id", "name", "status", "amount", "due_date", "is_active"}, records[0].Columns())

	require.Equal(t,
		"id,name,status,amount,due_date,is_active\n"+
			"1,\"Food, groceries\",open,300000,,true\n"+
			"2,Power,,150000.5,15,false",
		csvcodec.Serialize(records),
	)
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("decodes typed fields", func(t *testing.T) {
		t.Parallel()

		records := csvcodec.Parse(`id,name,status,amount,due_date,is_active
1,Food,open,300000,,true
2,15,,25.5,15,false`)

		items, err := csvcodec.UnmarshalAll[item](records)
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.Equal(t, 1, items[0].ID)
		require.Equal(t, "Food", items[0].Name)
		require.Equal(t, status("open"), items[0].Status)
		require.True(t, items[0].Amount.Equal(decimal.NewFromInt(300000)))
		require.Nil(t, items[0].DueDate)
		require.True(t, items[0].IsActive)

		require.Equal(t, "15", items[1].Name)
		require.True(t, items[1].Amount.Equal(decimal.RequireFromString("25.5")))
		require.NotNil(t, items[1].DueDate)
		require.Equal(t, 15, *items[1].DueDate)
		require.False(t, items[1].IsActive)
	})

	t.Run("missing columns leave fields untouched", func(t *testing.T) {
		t.Parallel()

		rec := csvcodec.NewRecord(1)
		rec.Set("id", csvcodec.IntValue(7))

		got := item{Name: "kept"}
		require.NoError(t, csvcodec.Unmarshal(rec, &got))
		require.Equal(t, 7, got.ID)
		require.Equal(t, "kept", got.Name)
	})

	t.Run("blank numbers decode as zero", func(t *testing.T) {
		t.Parallel()

		items, err := csvcodec.UnmarshalAll[item](csvcodec.Parse("id,amount,is_active\n,,"))
		require.NoError(t, err)
		require.Equal(t, 0, items[0].ID)
		require.True(t, items[0].Amount.IsZero())
		require.False(t, items[0].IsActive)
	})

	tests := map[string]struct {
		text        string
		expectedErr error
		expectedMsg string
	}{
		"text in a number column": {
			text:        "id,amount\n1,300000\n2,lots",
			expectedErr: csvcodec.ErrNotNumber,
			expectedMsg: `line 3, column "amount": cannot use "lots": not a number`,
		},
		"fraction in an integer column": {
			text:        "id\n1.5",
			expectedErr: csvcodec.ErrNotInteger,
			expectedMsg: `line 2, column "id"`,
		},
		"text in a boolean column": {
			text:        "id,is_active\n1,yes",
			expectedErr: csvcodec.ErrNotBool,
			expectedMsg: `column "is_active"`,
		},
	}

	for name, test := range tests {
		name, test := name, test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			items, err := csvcodec.UnmarshalAll[item](csvcodec.Parse(test.text))

			require.Nil(t, items)
			require.ErrorIs(t, err, test.expectedErr)
			require.ErrorContains(t, err, test.expectedMsg)

			var fe *csvcodec.FieldError
			require.ErrorAs(t, err, &fe)
		})
	}

	t.Run("rejects non struct targets", func(t *testing.T) {
		t.Parallel()

		var n int
		require.ErrorIs(t, csvcodec.Unmarshal(csvcodec.NewRecord(0), &n), csvcodec.ErrUnsupported)
	})
}
