// File: csv.go
// Role: results CSV I/O. Reads/writes with the standard library's
// encoding/csv (see DESIGN.md for why no third-party CSV library is used).
package aggregate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"instance", "n", "iseq", "type", "algo", "time"}

// ReadCSV parses the results CSV format: header row instance,n,iseq,type,
// algo,time followed by one data row per run.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		n, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad n field %q", ErrMalformedRow, rec[1])
		}
		iseq, err := strconv.ParseBool(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bad iseq field %q", ErrMalformedRow, rec[2])
		}
		rows = append(rows, Row{
			Instance: rec[0],
			N:        n,
			ISeq:     iseq,
			Type:     rec[3],
			Algo:     rec[4],
			Time:     rec[5],
		})
	}

	return rows, nil
}

// WriteCSV writes rows in the results CSV format, header first.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Instance,
			strconv.Itoa(r.N),
			strconv.FormatBool(r.ISeq),
			r.Type,
			r.Algo,
			r.Time,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
