package parser

import (
	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// fakeSheet is an in-memory Sheet of plain text cells. grid[r][c] holds
// row r+1, column c+1.
type fakeSheet struct {
	name string
	grid [][]string
}

func (s *fakeSheet) Name() string { return s.name }

func (s *fakeSheet) ActualRowCount() int {
	count := 0
	for _, row := range s.grid {
		if countNonEmpty(row) > 0 {
			count++
		}
	}
	return count
}

func (s *fakeSheet) ActualCellCount(row int) int {
	if row < 1 || row > len(s.grid) {
		return 0
	}
	return countNonEmpty(s.grid[row-1])
}

func (s *fakeSheet) Cell(row, col int) models.RawCell {
	if row < 1 || row > len(s.grid) || col < 1 || col > len(s.grid[row-1]) {
		return models.RawCell{}
	}
	v := s.grid[row-1][col-1]
	if v == "" {
		return models.RawCell{}
	}
	return models.RawCell{Kind: models.CellPlain, Text: v}
}

// itemSheet is a small sheet following the header convention.
func itemSheet(name string) *fakeSheet {
	return &fakeSheet{
		name: name,
		grid: [][]string{
			{"#", "item table"},
			{"id", "name", "dmg", ".ignore"},
			{"int", "string", "int", "string"},
			{"ALL", "ALL", "SERVER", "IGNORE"},
			{"1", "sword", "10", ""},
			{"2", "bow", "5", "no"},
			{"3", "wand", "7", "TRUE"},
		},
	}
}
