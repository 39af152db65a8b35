package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"watex/domain/survey"
	"watex/internal"
	apperrors "watex/internal/errors"
)

// DataReader handles reading survey tables from Excel and CSV files
type DataReader struct {
	config   Config
	fileType string // "xlsx" or "csv"
	logger   zerolog.Logger
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(config Config) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		config:   config,
		fileType: fileType,
		logger:   internal.Component("excel"),
	}
}

// ReadData reads the file into a survey table
func (r *DataReader) ReadData() (*survey.Table, error) {
	path := r.config.FilePath
	r.logger.Debug().Str("file", path).Str("type", r.fileType).Msg("reading survey table")

	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.FileError(path, err)
	}

	var (
		rows [][]string
		err  error
	)
	start := time.Now()
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, apperrors.FileError(path, err)
	}
	r.logger.Debug().Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("rows read")

	if len(rows) < 2 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s must have a header row and at least one data row", path))
	}
	return processRows(rows), nil
}

// ReadProfile reads an ERP line (station and resistivity columns)
func (r *DataReader) ReadProfile() (survey.Profile, error) {
	table, err := r.ReadData()
	if err != nil {
		return survey.Profile{}, err
	}
	p, err := table.ERPProfile()
	if err != nil {
		return survey.Profile{}, apperrors.Wrapf(apperrors.WithCode(apperrors.CodeInvalidInput, err), "invalid ERP table %s", r.config.FilePath)
	}
	return p, nil
}

// ReadSounding reads a VES (AB/2 and resistivity columns)
func (r *DataReader) ReadSounding() (survey.Profile, error) {
	table, err := r.ReadData()
	if err != nil {
		return survey.Profile{}, err
	}
	p, err := table.VESProfile()
	if err != nil {
		return survey.Profile{}, apperrors.Wrapf(apperrors.WithCode(apperrors.CodeInvalidInput, err), "invalid VES table %s", r.config.FilePath)
	}
	return p, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into a table, skipping blank rows
func processRows(rows [][]string) *survey.Table {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	var data []survey.RawRow
	for _, row := range rows[1:] {
		rowData := make(survey.RawRow)
		blank := true
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
				blank = blank && rowData[headers[j]] == ""
			}
		}
		if !blank {
			data = append(data, rowData)
		}
	}
	return &survey.Table{Headers: headers, Rows: data}
}
