package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"wortquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeTempFile(t, "vocab.json", `[
		{"id": "w1", "german": "Hund", "english": "dog", "difficulty": "easy", "tags": ["animals"]},
		{"german": " Katze ", "english": "cat", "difficulty": "EASY"},
		{"id": "w3", "german": "Zusammenhang", "english": "context", "difficulty": "hard"},
		{"id": "w4", "german": "Haus", "english": "house"}
	]`)

	items, err := Load(path)

	assert.NoError(t, err)
	assert.Len(t, items, 4)

	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "Hund", items[0].German)
	assert.Equal(t, "dog", items[0].English)
	assert.Equal(t, domain.TierEasy, items[0].Tier)
	assert.Equal(t, []string{"animals"}, items[0].Tags)

	// missing id gets generated, terms get trimmed, tier is case-insensitive
	assert.NotEmpty(t, items[1].ID)
	assert.Equal(t, "Katze", items[1].German)
	assert.Equal(t, domain.TierEasy, items[1].Tier)

	// missing difficulty defaults to medium
	assert.Equal(t, domain.TierMedium, items[3].Tier)
}

func TestLoad_JSONValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing english term",
			content: `[{"german": "Hund", "english": ""}]`,
		},
		{
			name:    "unknown difficulty",
			content: `[{"german": "Hund", "english": "dog", "difficulty": "impossible"}]`,
		},
		{
			name:    "not json",
			content: `german;english`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "vocab.json", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "vocab.txt", "Hund,dog")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestImportCSV(t *testing.T) {
	path := writeTempFile(t, "vocab.csv",
		"german,english,difficulty,tags\n"+
			"Hund,dog,easy,\"animals, pets\"\n"+
			"Verantwortung,responsibility,hard,\n"+
			"Haus,house,,\n"+
			"\n")

	items, err := Load(path)

	assert.NoError(t, err)
	assert.Len(t, items, 3)

	assert.Equal(t, "Hund", items[0].German)
	assert.Equal(t, domain.TierEasy, items[0].Tier)
	assert.Equal(t, []string{"animals", "pets"}, items[0].Tags)

	assert.Equal(t, domain.TierHard, items[1].Tier)
	assert.Empty(t, items[1].Tags)

	assert.Equal(t, domain.TierMedium, items[2].Tier)

	// imported rows get generated, distinct ids
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestImportCSV_BadRow(t *testing.T) {
	path := writeTempFile(t, "vocab.csv", "Hund,dog,easy\nKatze,,easy\n")
	_, err := ImportCSV(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestImportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"german", "english", "difficulty", "tags"},
		{"Hund", "dog", "easy", "animals"},
		{"Zusammenhang", "context", "hard", ""},
	}
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellValue("Sheet1", name, cell))
		}
	}
	assert.NoError(t, f.SaveAs(path))
	assert.NoError(t, f.Close())

	items, err := Load(path)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Hund", items[0].German)
	assert.Equal(t, domain.TierEasy, items[0].Tier)
	assert.Equal(t, []string{"animals"}, items[0].Tags)
	assert.Equal(t, domain.TierHard, items[1].Tier)
}
