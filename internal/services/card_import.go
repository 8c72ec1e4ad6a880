package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/dto"
	"github.com/memora-app/memora-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// Import columns: A front, B back, C difficulty (optional).
const (
	importFrontCol = iota
	importBackCol
	importDifficultyCol
)

// Import reads cards from an xlsx workbook (first sheet) or a csv file and
// adds them to the deck. Blank rows are skipped silently; rows with a missing
// side or an unknown difficulty are skipped and reported in Errors. A first
// row whose first cell is "front" is treated as a header.
func (s *CardService) Import(ctx context.Context, userID string, deckID uuid.UUID, filename string, r io.Reader) (*dto.ImportResult, error) {
	if err := s.checkDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", "":
		rows, err = readWorkbook(r)
	default:
		return nil, invalid("file must be .xlsx or .csv")
	}
	if err != nil {
		return nil, invalid(err.Error())
	}

	result := &dto.ImportResult{Errors: []string{}}
	cards := make([]models.Card, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[importFrontCol]), "front") {
			continue
		}

		front := cell(row, importFrontCol)
		back := cell(row, importBackCol)
		difficulty := cell(row, importDifficultyCol)
		if front == "" && back == "" && difficulty == "" {
			result.Skipped++
			continue
		}
		if front == "" || back == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: front and back are required", i+1))
			continue
		}
		difficulty, err := normalizeDifficulty(difficulty)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		cards = append(cards, models.Card{DeckID: deckID, Front: front, Back: back, Difficulty: difficulty})
	}

	if len(cards) > 0 {
		if err := s.cards.CreateBatch(ctx, cards); err != nil {
			return nil, fmt.Errorf("failed to import cards: %w", err)
		}
	}
	result.Created = len(cards)

	slog.Info("cards imported",
		"deck_id", deckID,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %v", err)
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
