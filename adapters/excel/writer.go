package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"watex/domain/survey"
	apperrors "watex/internal/errors"
)

// FeatureHeaders are the exported feature table columns
var FeatureHeaders = []string{
	"id", "easting", "northing", "power", "magnitude", "shape", "type",
	"sfi", "ohms", "anr", "flow", "flow_class",
}

// WriteFeatures exports the feature table to .xlsx or .csv depending on the
// path extension.
func WriteFeatures(path string, rows []survey.Features) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.FileError(path, err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, featureRecord(row))
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = writeCSV(path, records)
	case ".xlsx":
		err = writeExcel(path, records)
	default:
		return apperrors.InvalidInput(fmt.Sprintf("unsupported export format %q", filepath.Ext(path)))
	}
	if err != nil {
		return apperrors.FileError(path, err)
	}
	return nil
}

func featureRecord(f survey.Features) []string {
	flow := ""
	if f.Flow != nil {
		flow = formatFloat(*f.Flow)
	}
	return []string{
		f.ID.String(),
		formatFloat(f.Easting),
		formatFloat(f.Northing),
		formatFloat(f.Power),
		formatFloat(f.Magnitude),
		string(f.Shape),
		string(f.Type),
		formatFloat(f.SFI),
		formatFloat(f.OhmS),
		formatFloat(f.ANR),
		flow,
		f.FlowClass,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(path string, records [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(FeatureHeaders); err != nil {
		return err
	}
	return w.WriteAll(records)
}

func writeExcel(path string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := setRow(f, sheet, 1, FeatureHeaders); err != nil {
		return err
	}
	for i, record := range records {
		if err := setRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// setRow writes numeric cells as numbers so spreadsheets can sort them
func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cells[i] = n
		} else {
			cells[i] = v
		}
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
