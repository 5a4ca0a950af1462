// Output rendering shared by all scout commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Output format names accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputXLSX  = "xlsx"
)

const defaultXLSXFile = "scout.xlsx"

// render writes a command result in the selected output format. Table
// and xlsx use the pre-formatted header and rows; json and yaml marshal
// the typed records directly.
func render(sheet string, header []string, rows [][]string, records any) error {
	switch flagOutput {
	case outputTable, "":
		printTable(header, rows)
		return nil
	case outputJSON:
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Println(string(out))
		return nil
	case outputYAML:
		out, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil
	case outputXLSX:
		path := flagOutFile
		if path == "" {
			path = defaultXLSXFile
		}
		if err := writeXLSX(path, sheet, header, rows); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Printf("Wrote %d row(s) to %s\n", len(rows), path)
		return nil
	default:
		return userErrorf("unknown output format %q (valid: table, json, yaml, xlsx)", flagOutput)
	}
}

// printTable renders rows as an aligned text table with a header and a
// count footer.
func printTable(header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("No results.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(header, "\t"))
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(dashes, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	// Trim the padding tabwriter leaves at line ends.
	out := strings.TrimRight(sb.String(), "\n")
	for _, line := range strings.Split(out, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d\n", len(rows))
}

// writeXLSX exports rows to a single-sheet workbook with a styled
// header row.
func writeXLSX(path, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for col, h := range header {
		cell := columnName(col+1) + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for col, val := range row {
			f.SetCellValue(sheet, columnName(col+1)+strconv.Itoa(rowIdx+2), val)
		}
	}

	for col := range header {
		name := columnName(col + 1)
		f.SetColWidth(sheet, name, name, 18)
	}

	return f.SaveAs(path)
}

// columnName converts a 1-based column index to an Excel column name
// (1 becomes A, 27 becomes AA).
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// Cell formatters. Nil pointers render as the empty cell.

func fmtInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func fmtFloat(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func fmtBool(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "yes"
	}
	return "no"
}

func fmtDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

func fmtDateTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02 15:04")
}

func fmtList(v []string) string {
	return strings.Join(v, ", ")
}
