// Package export renders transaction lists as downloadable reports.
package export

import (
	"encoding/csv"
	"io"

	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/xuri/excelize/v2"
)

// TimeLayout is the timestamp layout used in exported rows (DD-MM-YYYY HH:MM:SS).
const TimeLayout = "02-01-2006 15:04:05"

const sheetName = "Transactions"

// Header is the column order of every export.
var Header = []string{"id", "user", "method", "amount", "timestamp", "status"}

func row(txn models.Transaction) []string {
	return []string{
		txn.ID.String(),
		txn.UserLogin,
		txn.Method,
		txn.Amount.StringFixed(2),
		txn.CreatedAt.Format(TimeLayout),
		txn.Status,
	}
}

// WriteCSV writes a header line followed by one line per transaction.
func WriteCSV(w io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, txn := range txns {
		if err := cw.Write(row(txn)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook with a header row. Amounts are
// stored as numbers so spreadsheet formulas work on them.
func WriteXLSX(w io.Writer, txns []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, txn := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		amount, _ := txn.Amount.Float64()
		values := []interface{}{
			txn.ID.String(),
			txn.UserLogin,
			txn.Method,
			amount,
			txn.CreatedAt.Format(TimeLayout),
			txn.Status,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}
