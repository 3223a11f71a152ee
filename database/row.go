package database

// Row is an ordered sequence of stored values, one per schema column,
// positionally aligned to the owning table's columns.
type Row []string

// clone returns an independent copy of the row.
func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// project returns the values at the given column positions, in order.
func (r Row) project(indexes []int) Row {
	out := make(Row, len(indexes))
	for i, idx := range indexes {
		out[i] = r[idx]
	}
	return out
}
