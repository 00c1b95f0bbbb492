package client

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/models"
)

// nullText stands for SQL NULL in TSV output.
const nullText = `\N`

func newTSVWriter(w io.Writer) *csv.Writer {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'
	return tw
}

// writeRowsTSV prints a header of column names followed by one line per row.
// An empty table prints nothing.
func writeRowsTSV(w io.Writer, rows []models.TypedRow) error {
	if len(rows) == 0 {
		return nil
	}

	tw := newTSVWriter(w)
	if err := tw.Write(rows[0].Names()); err != nil {
		return err
	}

	record := make([]string, len(rows[0]))
	for i, row := range rows {
		record = record[:0]
		for _, f := range row {
			if f.Value == nil {
				record = append(record, nullText)
				continue
			}
			text, err := codec.FormatValue(f.Tag, f.Value)
			if err != nil {
				return fmt.Errorf("row %d, column %q: %w", i, f.Name, err)
			}
			record = append(record, text)
		}
		if err := tw.Write(record); err != nil {
			return err
		}
	}

	tw.Flush()
	return tw.Error()
}

func writeInfosTSV(w io.Writer, infos []models.SealedTableInfo) error {
	tw := newTSVWriter(w)
	if err := tw.Write([]string{"id", "name", "rows", "columns", "iterations", "created_at"}); err != nil {
		return err
	}

	for _, info := range infos {
		record := []string{
			info.ID,
			info.Name,
			strconv.Itoa(info.RowCount),
			strconv.Itoa(info.ColumnCount),
			strconv.Itoa(info.Iterations),
			info.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := tw.Write(record); err != nil {
			return err
		}
	}

	tw.Flush()
	return tw.Error()
}
