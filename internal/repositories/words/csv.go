package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/minimposter/internal/models"
)

// ErrNoWords is returned when an import contains no usable rows
var ErrNoWords = errors.New("no valid words found")

// ParseCSV builds a bank from "category,secret" rows, skipping the header.
// Categories are matched against existing ones by either label and created when unknown.
// The returned words replace the existing ones; existing categories are kept.
func ParseCSV(r io.Reader, existing []*models.Category) (*models.WordBank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	categories := make([]*models.Category, 0, len(existing))
	byName := make(map[string]*models.Category)
	ids := make(map[string]bool)
	for _, c := range existing {
		cp := *c
		categories = append(categories, &cp)
		byName[cp.AR] = &cp
		byName[cp.EN] = &cp
		ids[cp.ID] = true
	}

	words := make([]*models.WordPair, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		secret := strings.TrimSpace(row[1])
		if name == "" || secret == "" {
			continue
		}

		category, ok := byName[name]
		if !ok {
			id := fmt.Sprintf("cat_%d", len(categories)+1)
			for n := len(categories) + 2; ids[id]; n++ {
				id = fmt.Sprintf("cat_%d", n)
			}
			ids[id] = true
			category = &models.Category{ID: id, AR: name, EN: name}
			categories = append(categories, category)
			byName[name] = category
		}

		words = append(words, &models.WordPair{
			ID:         fmt.Sprintf("w_%d", i),
			CategoryID: category.ID,
			Secret:     secret,
		})
	}

	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return &models.WordBank{
		Categories: categories,
		Words:      words,
	}, nil
}
