package vocab

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"wortquiz/internal/domain"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Imported spreadsheets carry one word pair per row:
// german, english, optional difficulty, optional comma-separated tags.
// A header row is recognized by its first cell and skipped.

// ImportCSV reads a vocabulary list from a CSV file
func ImportCSV(path string) ([]domain.VocabItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	return parseRows(rows)
}

// ImportXLSX reads a vocabulary list from an Excel sheet; an empty sheet name
// selects the first sheet in the workbook
func ImportXLSX(path, sheet string) ([]domain.VocabItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) ([]domain.VocabItem, error) {
	var items []domain.VocabItem
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		item, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRow(row []string) (domain.VocabItem, error) {
	if len(row) < 2 {
		return domain.VocabItem{}, fmt.Errorf("expected at least german and english columns, got %d", len(row))
	}

	german := strings.TrimSpace(row[0])
	english := strings.TrimSpace(row[1])
	if german == "" || english == "" {
		return domain.VocabItem{}, fmt.Errorf("german and english terms are required")
	}

	difficulty := ""
	if len(row) > 2 {
		difficulty = row[2]
	}
	tier, err := normalizeTier(difficulty)
	if err != nil {
		return domain.VocabItem{}, err
	}

	var tags []string
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		tags = cleanTags(strings.Split(row[3], ","))
	}

	return domain.VocabItem{
		ID:      uuid.NewString(),
		German:  german,
		English: english,
		Tier:    tier,
		Tags:    tags,
	}, nil
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "german" || first == "deutsch"
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
