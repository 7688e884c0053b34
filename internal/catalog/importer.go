package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the vocabulary import configuration
type ImportConfig struct {
	FilePath       string // Path to the Excel or CSV file
	WordColumn     string // Column with the Japanese word
	RomajiColumn   string // Column with the romanization
	EnglishColumn  string // Column with the English meaning
	CategoryColumn string // Column with the category
	JLPTColumn     string // Column with the JLPT level
	SheetName      string // Name of the sheet to import
	StartRow       int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:     "A",
		RomajiColumn:   "B",
		EnglishColumn:  "C",
		CategoryColumn: "D",
		JLPTColumn:     "E",
		SheetName:      "Sheet1",
		StartRow:       2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Added          int
	Updated        int
	Errors         []string
}

// ImportVocabulary extends the catalog's vocabulary from an Excel or
// CSV word list. Existing entries (matched by the Japanese word) are
// updated in place; new entries are appended in file order.
func (c *Catalog) ImportVocabulary(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return c.importFromCSV(config)
	}
	return c.importFromExcel(config)
}

// importFromExcel imports vocabulary from an Excel file
func (c *Catalog) importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := c.processRow(row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports vocabulary from a CSV file
func (c *Catalog) importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := c.processRow(row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow folds a single row into the catalog's vocabulary.
func (c *Catalog) processRow(row []string, config ImportConfig, result *ImportResult) error {
	var word, romaji, english, category, jlpt string

	if colIdx := columnToIndex(config.WordColumn); colIdx < len(row) {
		word = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.RomajiColumn); colIdx < len(row) {
		romaji = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.EnglishColumn); colIdx < len(row) {
		english = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.CategoryColumn); colIdx < len(row) {
		category = strings.TrimSpace(row[colIdx])
	}
	if config.JLPTColumn != "" {
		if colIdx := columnToIndex(config.JLPTColumn); colIdx < len(row) {
			jlpt = strings.TrimSpace(row[colIdx])
		}
	}

	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if english == "" {
		return fmt.Errorf("english meaning cannot be empty")
	}

	entry := VocabularyEntry{
		Japanese: word,
		Romaji:   romaji,
		English:  english,
		Category: category,
		JLPT:     parseIntOrDefault(jlpt, 1, 5, 5),
	}

	if existing := c.Word(word); existing != nil {
		*existing = entry
		result.Updated++
		return nil
	}

	c.Vocabulary = append(c.Vocabulary, entry)
	result.Added++
	return nil
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// parseIntOrDefault parses an integer clamped to [min,max], falling
// back to defaultVal on unparseable input
func parseIntOrDefault(s string, min, max, defaultVal int) int {
	var val int
	if _, err := fmt.Sscanf(s, "%d", &val); err != nil {
		return defaultVal
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
