// Package tabular reads CSV and Excel files into the shared dataset
// table, selecting the parser by file extension.
package tabular

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"evinsight/domain/dataset"
	"evinsight/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader handles reading Excel and CSV files into a dataset table
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given path. Anything without an
// .xlsx/.xls extension is treated as delimited text.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read parses the file into a table. A header-only file is valid and
// yields a zero-row table.
func (r *Reader) Read() (*dataset.Table, error) {
	log.Printf("[TableReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *Reader) readCSV() (*dataset.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError(r.filePath, err)
	}
	readTime := time.Since(readStart)
	log.Printf("[TableReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

func (r *Reader) readExcel() (*dataset.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ParseError(r.filePath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ParseError(r.filePath, err)
	}
	readTime := time.Since(startTime)
	log.Printf("[TableReader] Sheet %q read in %.2fms (%d rows)", sheet, float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows converts raw string rows (header first) into a table
func (r *Reader) processRows(rows [][]string) (*dataset.Table, error) {
	if len(rows) == 0 {
		return nil, errors.ParseError(r.filePath, errors.New(errors.CodeParseError, "file has no header row"))
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	table := dataset.New(headers, rows[1:])
	log.Printf("[TableReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), table.ColumnCount(), table.RowCount())
	return table, nil
}

// FileReader implements ports.TableReader over per-call paths
type FileReader struct{}

// NewFileReader returns the default file-backed table reader
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read loads the file at path into a table
func (f *FileReader) Read(path string) (*dataset.Table, error) {
	return NewReader(path).Read()
}
