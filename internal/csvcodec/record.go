package csvcodec

import "slices"

// Record maps column names to values and remembers the order in which
// columns were first set.
type Record struct {
	columns []string
	values  map[string]Value
}

// NewRecord returns an empty record sized for n columns.
func NewRecord(n int) Record {
	return Record{
		columns: make([]string, 0, n),
		values:  make(map[string]Value, n),
	}
}

// Set stores v under column. Setting an existing column overwrites its value
// and keeps its original position.
func (r *Record) Set(column string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.values[column] = v
}

func (r Record) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column names in insertion order.
func (r Record) Columns() []string {
	return slices.Clone(r.columns)
}

func (r Record) Len() int {
	return len(r.columns)
}

// Has reports whether every given column is present.
func (r Record) Has(columns ...string) bool {
	for _, c := range columns {
		if _, ok := r.values[c]; !ok {
			return false
		}
	}
	return true
}
