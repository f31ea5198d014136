package main

import (
	"encoding/csv"
	"io"
)

// writeRecords writes records as CSV, header row included as records[0].
func writeRecords(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
