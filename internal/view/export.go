package view

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"go-inventory-tracker/internal/model"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
)

// TimestampLayout renders timestamps as ISO-8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	exportSheet = "Sheet1"

	// Built-in number format "0.00".
	twoDecimals = `{"number_format": 2}`
)

var exportHeader = []string{"Name", "Category", "Quantity", "Unit Price", "Total", "Last Movement"}

type exportRow struct {
	Name         string `csv:"Name"`
	Category     string `csv:"Category"`
	Quantity     int    `csv:"Quantity"`
	UnitPrice    string `csv:"Unit Price"`
	Total        string `csv:"Total"`
	LastMovement string `csv:"Last Movement"`
}

func toExportRows(products []model.Product) []*exportRow {
	rows := make([]*exportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &exportRow{
			Name:         p.Name,
			Category:     p.Category,
			Quantity:     p.Quantity,
			UnitPrice:    money(p.UnitPrice),
			Total:        money(p.Total()),
			LastMovement: p.LastMovement.UTC().Format(TimestampLayout),
		})
	}
	return rows
}

// money renders v with two decimals, rounding the binary value as stored.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV renders the full collection, header first, one line per product.
// Fields holding commas or quotes are quoted.
func WriteCSV(w io.Writer, products []model.Product) error {
	if err := gocsv.Marshal(toExportRows(products), w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX renders the same columns as WriteCSV into a one-sheet workbook,
// with numbers kept numeric and money columns shown with two decimals.
func WriteXLSX(w io.Writer, products []model.Product) error {
	f := excelize.NewFile()
	style, err := f.NewStyle(twoDecimals)
	if err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	for col, title := range exportHeader {
		f.SetCellValue(exportSheet, cellName(col, 1), title)
	}
	for i, p := range products {
		row := i + 2
		f.SetCellValue(exportSheet, cellName(0, row), p.Name)
		f.SetCellValue(exportSheet, cellName(1, row), p.Category)
		f.SetCellValue(exportSheet, cellName(2, row), p.Quantity)
		f.SetCellValue(exportSheet, cellName(3, row), p.UnitPrice)
		f.SetCellValue(exportSheet, cellName(4, row), p.Total())
		f.SetCellValue(exportSheet, cellName(5, row), p.LastMovement.UTC().Format(TimestampLayout))
	}
	if len(products) > 0 {
		f.SetCellStyle(exportSheet, cellName(3, 2), cellName(4, len(products)+1), style)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func cellName(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}

// ExportFilename is estoque_<YYYY-MM-DD>.<ext>, dated by the UTC day of now.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("estoque_%s.%s", now.UTC().Format("2006-01-02"), ext)
}
