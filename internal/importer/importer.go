// Package importer は商品JSONL（1行1商品）を読み込んでカタログに入れる。
package importer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// 1行の上限。超えた行は壊れた行と同じく飛ばす
const maxLineBytes = 4 * 1024 * 1024

var ErrMissingID = errors.New("missing id")

// Record はJSONL 1行分
type Record struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	PriceInfo  struct {
		Price        float64 `json:"price"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"priceInfo"`
	Images []struct {
		URI string `json:"uri"`
	} `json:"images"`
	Availability string `json:"availability"`
}

// ToProduct は既定値を埋めて Product にする
func (r Record) ToProduct() (model.Product, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return model.Product{}, ErrMissingID
	}

	category := strings.Join(r.Categories, ", ")
	if category == "" {
		category = model.DefaultCategory
	}

	currency := r.PriceInfo.CurrencyCode
	if currency == "" {
		currency = model.DefaultCurrencyCode
	}

	image := ""
	if len(r.Images) > 0 {
		image = r.Images[0].URI
	}

	availability := model.Availability(r.Availability)
	if availability == "" {
		availability = model.AvailabilityOutOfStock
	}

	return model.Product{
		ID:           id,
		Title:        r.Title,
		Category:     category,
		Price:        r.PriceInfo.Price,
		CurrencyCode: currency,
		ImageURL:     image,
		Availability: availability,
	}, nil
}

type Stats struct {
	Lines      int   `json:"lines"`
	Parsed     int   `json:"parsed"`
	Malformed  int   `json:"malformed"`
	Duplicates int   `json:"duplicates"`
	Inserted   int64 `json:"inserted"`
}

// Decode は全行を読む。壊れた行・長すぎる行はログを出して飛ばし、同じIDは最初の行を採用する。
func Decode(r io.Reader, log *logger.Logger) ([]model.Product, Stats, error) {
	var (
		stats    Stats
		products []model.Product
		seen     = make(map[string]struct{})
	)

	br := bufio.NewReaderSize(r, 64*1024)

	lineNo := 0
	for {
		raw, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read jsonl at line %d: %w", lineNo+1, err)
		}
		lineNo++

		if tooLong {
			stats.Lines++
			stats.Malformed++
			log.Warn("import: oversized line skipped", slog.Int("line", lineNo), slog.Int("max_bytes", maxLineBytes))
			continue
		}

		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.Malformed++
			log.Warn("import: malformed line skipped", slog.Int("line", lineNo), slog.String("error", err.Error()))
			continue
		}
		p, err := rec.ToProduct()
		if err != nil {
			stats.Malformed++
			log.Warn("import: invalid record skipped", slog.Int("line", lineNo), slog.String("error", err.Error()))
			continue
		}

		if _, dup := seen[p.ID]; dup {
			stats.Duplicates++
			continue
		}
		seen[p.ID] = struct{}{}
		stats.Parsed++
		products = append(products, p)
	}

	return products, stats, nil
}

// readLine は1行を読む。上限を超えた行は最後まで読み捨てて tooLong を返す。
// 入力の終わりでは io.EOF。
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// Import は Decode してDBに入れる。DBに既にあるIDもスキップされる（先勝ち）。
func Import(ctx context.Context, r io.Reader, products repo.ProductRepository, log *logger.Logger) (Stats, error) {
	items, stats, err := Decode(r, log)
	if err != nil {
		return stats, err
	}

	n, err := products.InsertIgnoreDuplicates(ctx, items)
	if err != nil {
		return stats, err
	}
	stats.Inserted = n
	stats.Duplicates += len(items) - int(n)
	return stats, nil
}
