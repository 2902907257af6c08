package premium

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// matrixSheet is the worksheet holding the rating matrix. Rows are
// ordered by band: the 1-based row position is the band score.
// Columns: 0 = product code, 1 = sum insured, 3 = annual premium.
const matrixSheet = "matrix"

type matrixRow struct {
	Key     string
	Premium string
	Score   int
}

// Load reads the premium workbook and writes every rating row into the
// store, then drops any quotes served from the previous matrix.
func (p *PremiumService) Load(ctx context.Context) error {
	rows, err := readMatrix(p.tablePath)
	if err != nil {
		p.logger.Error(fmt.Sprintf("loading premium table: %v", err))
		return ErrInternal
	}

	for _, row := range rows {
		if err := p.store.AddRate(ctx, row.Key, row.Score, row.Premium); err != nil {
			p.logger.Error(fmt.Sprintf("storing rate %v: %v", row.Key, err))
			return ErrInternal
		}
	}

	p.quotes.Flush()
	p.logger.Info(fmt.Sprintf("loaded %v rating rows from %v", len(rows), p.tablePath))
	return nil
}

// Unload flushes the rating matrix and the quote cache.
func (p *PremiumService) Unload(ctx context.Context) error {
	if err := p.store.Flush(ctx); err != nil {
		p.logger.Error(fmt.Sprintf("unloading premium matrix: %v", err))
		return ErrInternal
	}

	p.quotes.Flush()
	return nil
}

// Loaded reports whether any rating rows are present in the store.
func (p *PremiumService) Loaded(ctx context.Context) (bool, error) {
	loaded, err := p.store.HasKeys(ctx)
	if err != nil {
		p.logger.Error(fmt.Sprintf("checking premium matrix: %v", err))
		return false, ErrInternal
	}

	return loaded, nil
}

func readMatrix(path string) ([]matrixRow, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open premium table %v: %w", path, err)
	}
	defer book.Close()

	cells, err := book.GetRows(matrixSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %v: %w", matrixSheet, err)
	}

	var rows []matrixRow
	for i, row := range cells {
		if len(row) < 4 {
			return nil, fmt.Errorf("row %d has %d columns, want at least 4", i+1, len(row))
		}

		premium, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d premium %q is not a whole amount", i+1, row[3])
		}

		rows = append(rows, matrixRow{
			Key:     row[0] + ":" + row[1],
			Premium: strconv.Itoa(premium),
			Score:   i + 1,
		})
	}

	return rows, nil
}
