package table

// Merge folds the per-worker tables into a fresh one. The inputs are only
// read. Run it after every worker has finished.
func Merge(trust bool, tables ...*Table) *Table {
	out := New(trust)
	for _, t := range tables {
		t.each(out.Combine)
	}
	return out
}
