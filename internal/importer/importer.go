// Package importer provides CSV and Excel import functionality for cut
// lists and board catalogs. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/BoardCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// CutsResult holds the outcome of importing a cut list.
type CutsResult struct {
	Cuts     []model.CutRequest
	Errors   []string
	Warnings []string
}

// BoardsResult holds the outcome of importing a board catalog.
type BoardsResult struct {
	Boards   []model.BoardOffering
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// Quantity applies to cut lists, Price to board catalogs; the unused one
// stays -1.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Length   int
	Quantity int
	Price    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "part", "part name", "description", "desc", "piece", "item", "board"},
	"width":    {"width", "w"},
	"height":   {"height", "h", "thickness"},
	"length":   {"length", "len", "l"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"price":    {"price", "cost", "$", "price each", "unit price"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping (label, width, height, length, last column)
// and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:    -1,
		Width:    -1,
		Height:   -1,
		Length:   -1,
		Quantity: -1,
		Price:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				case "price":
					if mapping.Price == -1 {
						mapping.Price = i
					}
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: Label, Width, Height, Length, then quantity
		// or price in the final column depending on what is imported.
		return ColumnMapping{
			Label:    0,
			Width:    1,
			Height:   2,
			Length:   3,
			Quantity: 4,
			Price:    4,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDims extracts the shared label/width/height/length fields of a row.
func parseDims(row []string, mapping ColumnMapping, rowLabel, fallbackLabel string) (label string, w, h, length float64, errMsg string) {
	label = getCell(row, mapping.Label)
	if label == "" {
		label = fallbackLabel
	}

	for _, field := range []struct {
		name string
		idx  int
		dst  *float64
	}{
		{"width", mapping.Width, &w},
		{"height", mapping.Height, &h},
		{"length", mapping.Length, &length},
	} {
		s := getCell(row, field.idx)
		if s == "" {
			return "", 0, 0, 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field.name)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", 0, 0, 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field.name, s)
		}
		*field.dst = v
	}

	if w <= 0 || h <= 0 || length <= 0 {
		return "", 0, 0, 0, fmt.Sprintf("%s: Width, height, and length must be positive", rowLabel)
	}
	return label, w, h, length, ""
}

// parseCutRow extracts a CutRequest from a row using the given column mapping.
func parseCutRow(row []string, mapping ColumnMapping, rowLabel string, cutCount int) (model.CutRequest, string) {
	label, w, h, length, errMsg := parseDims(row, mapping, rowLabel, fmt.Sprintf("Cut %d", cutCount+1))
	if errMsg != "" {
		return model.CutRequest{}, errMsg
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.CutRequest{}, fmt.Sprintf("%s: Missing quantity value", rowLabel)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.CutRequest{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr)
	}
	if qty <= 0 {
		return model.CutRequest{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel)
	}

	return model.NewCutRequest(label, w, h, length, qty), ""
}

// parseBoardRow extracts a BoardOffering from a row using the given column mapping.
func parseBoardRow(row []string, mapping ColumnMapping, rowLabel string, boardCount int) (model.BoardOffering, string) {
	label, w, h, length, errMsg := parseDims(row, mapping, rowLabel, fmt.Sprintf("Board %d", boardCount+1))
	if errMsg != "" {
		return model.BoardOffering{}, errMsg
	}

	priceStr := strings.TrimPrefix(getCell(row, mapping.Price), "$")
	if priceStr == "" {
		return model.BoardOffering{}, fmt.Sprintf("%s: Missing price value", rowLabel)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return model.BoardOffering{}, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, priceStr)
	}
	if price < 0 {
		return model.BoardOffering{}, fmt.Sprintf("%s: Price must not be negative", rowLabel)
	}

	return model.NewBoardOffering(label, w, h, length, price), ""
}

// readRows loads tabular data from a CSV or Excel file based on extension.
func readRows(path string) ([][]string, []string, error) {
	var warnings []string

	if strings.HasSuffix(strings.ToLower(path), ".xlsx") || strings.HasSuffix(strings.ToLower(path), ".xls") {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open Excel file: %w", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("Excel file has no sheets")
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, nil, fmt.Errorf("cannot read Excel data: %w", err)
		}
		return rows, warnings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	return parseCSV(bytes.NewReader(data), delimiter, warnings)
}

func parseCSV(r io.Reader, delimiter rune, warnings []string) ([][]string, []string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}
	return records, warnings, nil
}

// prepareRows detects headers, validates required columns, and returns the
// mapping plus the index of the first data row.
func prepareRows(rows [][]string, lastColumn string) (ColumnMapping, int, []string, string) {
	var warnings []string

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		warnings = append(warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if lastColumn == "quantity" && mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if lastColumn == "price" && mapping.Price == -1 {
			missing = append(missing, "Price")
		}
		if len(missing) > 0 {
			return mapping, 0, warnings, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", "))
		}
	} else if len(rows[0]) >= 4 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			// First column after label is not numeric: likely an
			// unrecognized header. Skip it but keep positional mapping.
			startRow = 1
			warnings = append(warnings, "Detected header row, skipping")
		}
	}

	return mapping, startRow, warnings, ""
}

// ImportCuts imports a cut list from a CSV or Excel file. Columns are mapped
// by header names when present, positionally otherwise.
func ImportCuts(path string) CutsResult {
	result := CutsResult{}

	rows, warnings, err := readRows(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, startRow, prepWarnings, prepErr := prepareRows(rows, "quantity")
	result.Warnings = append(result.Warnings, prepWarnings...)
	if prepErr != "" {
		result.Errors = append(result.Errors, prepErr)
		return result
	}

	for i := startRow; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		rowLabel := fmt.Sprintf("Line %d", i+1)
		cut, errMsg := parseCutRow(rows[i], mapping, rowLabel, len(result.Cuts))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Cuts = append(result.Cuts, cut)
	}

	return result
}

// ImportBoards imports a board catalog from a CSV or Excel file.
func ImportBoards(path string) BoardsResult {
	result := BoardsResult{}

	rows, warnings, err := readRows(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, startRow, prepWarnings, prepErr := prepareRows(rows, "price")
	result.Warnings = append(result.Warnings, prepWarnings...)
	if prepErr != "" {
		result.Errors = append(result.Errors, prepErr)
		return result
	}

	for i := startRow; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		rowLabel := fmt.Sprintf("Line %d", i+1)
		board, errMsg := parseBoardRow(rows[i], mapping, rowLabel, len(result.Boards))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Boards = append(result.Boards, board)
	}

	return result
}
