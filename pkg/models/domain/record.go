package domain

// Field is a single named value of an exportable row.
type Field struct {
	Key   string
	Value any
}

// Record is a row that can be written by the tabular exporters. The order of
// Fields is the column order.
type Record interface {
	Fields() []Field
}

// MapRecord is an ordered ad-hoc record.
type MapRecord []Field

func (r MapRecord) Fields() []Field {
	return r
}

// Records converts a typed slice into exporter rows.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
