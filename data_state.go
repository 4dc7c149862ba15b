package main

import (
	"github.com/andareed/siftly-timeline/timeline"
)

// dataState is the loaded timeline plus its pre-flattened list rows, kept
// parallel to the store's records.
type dataState struct {
	store  *timeline.Store
	header []ColumnMeta
	rows   []renderedRow
}

func newDataState(store *timeline.Store) dataState {
	header := listColumns()
	rows := make([]renderedRow, store.Len())
	for i := range rows {
		rows[i] = newRenderedRow(store.At(i), header)
	}
	return dataState{store: store, header: header, rows: rows}
}

func (d *dataState) record(i int) *timeline.Record {
	if i < 0 || i >= d.store.Len() {
		return nil
	}
	return d.store.At(i)
}
