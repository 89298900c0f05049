package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
	"capitaluy-backend/internal/timeutil"
)

// Price actions accepted by Apply
const (
	PriceActionUpdate     = "update"
	PriceActionAdd        = "add"
	PriceActionDelete     = "delete"
	PriceActionToggle     = "toggle"
	PriceActionImport     = "import"
	PriceActionBulkUpdate = "bulk_update"
)

type CryptoPriceService struct {
	Repo *repositories.CryptoPriceRepository
	last lastKnown[[]models.CryptoPrice]
	now  func() string
}

func NewCryptoPriceService(repo *repositories.CryptoPriceRepository) *CryptoPriceService {
	return &CryptoPriceService{Repo: repo, now: timeutil.NowStamp}
}

func (s *CryptoPriceService) defaults() []models.CryptoPrice {
	return models.DefaultCryptoPrices(s.now())
}

func (s *CryptoPriceService) List(ctx context.Context) models.PriceListResponse {
	prices := readOrFallback(ctx, "prices", &s.last, s.Repo.List, s.defaults)
	return models.PriceListResponse{Cryptos: prices, LastUpdated: s.now()}
}

// Apply runs one price-list action and persists the whole list.
func (s *CryptoPriceService) Apply(ctx context.Context, action string, data map[string]interface{}) (models.PriceListResponse, error) {
	if data == nil {
		data = map[string]interface{}{}
	}

	var apply func([]models.CryptoPrice, map[string]interface{}, string) ([]models.CryptoPrice, error)
	switch action {
	case PriceActionUpdate:
		apply = updatePrice
	case PriceActionAdd:
		apply = addPrice
	case PriceActionDelete:
		apply = deletePrice
	case PriceActionToggle:
		apply = togglePrice
	case PriceActionImport:
		apply = importPrices
	case PriceActionBulkUpdate:
		apply = bulkUpdatePrices
	default:
		return models.PriceListResponse{}, ErrInvalidAction
	}

	current, err := loadForWrite(ctx, s.Repo.List, s.defaults)
	if err != nil {
		return models.PriceListResponse{}, fmt.Errorf("load prices: %w", err)
	}

	stamp := s.now()
	prices, err := apply(append([]models.CryptoPrice(nil), current...), data, stamp)
	if err != nil {
		return models.PriceListResponse{}, err
	}

	if err := s.Repo.SaveAll(ctx, prices); err != nil {
		return models.PriceListResponse{}, err
	}
	s.last.remember(prices)

	zap.S().Infow("[Prices] list updated", "action", action, "count", len(prices))
	return models.PriceListResponse{Cryptos: prices, LastUpdated: stamp}, nil
}

func indexOfPrice(prices []models.CryptoPrice, id string) int {
	for i, p := range prices {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// mergePrice applies a patch to one entry, keeping its id.
func mergePrice(p models.CryptoPrice, patch map[string]interface{}, stamp string) (models.CryptoPrice, error) {
	var merged models.CryptoPrice
	if err := mergePatch(p, without(patch, "id", "lastUpdated"), &merged); err != nil {
		return models.CryptoPrice{}, fmt.Errorf("merge price: %w", err)
	}
	merged.ID = p.ID
	merged.LastUpdated = stamp
	return merged, nil
}

func updatePrice(prices []models.CryptoPrice, data map[string]interface{}, stamp string) ([]models.CryptoPrice, error) {
	id := stringField(data, "id")
	if id == "" {
		return nil, ErrMissingID
	}

	idx := indexOfPrice(prices, id)
	if idx == -1 {
		return nil, ErrNotFound
	}

	updated, err := mergePrice(prices[idx], data, stamp)
	if err != nil {
		return nil, err
	}
	prices[idx] = updated
	return prices, nil
}

func addPrice(prices []models.CryptoPrice, data map[string]interface{}, stamp string) ([]models.CryptoPrice, error) {
	symbol := strings.TrimSpace(stringField(data, "symbol"))
	if symbol == "" {
		return nil, ErrMissingSymbol
	}

	id := strings.ToLower(symbol)
	if indexOfPrice(prices, id) != -1 {
		return nil, ErrAlreadyExists
	}

	entry, err := mergePrice(models.CryptoPrice{ID: id, Enabled: true}, data, stamp)
	if err != nil {
		return nil, err
	}
	entry.Symbol = strings.ToUpper(symbol)

	return append(prices, entry), nil
}

// deletePrice removes the entry if present; an unknown id is a no-op.
func deletePrice(prices []models.CryptoPrice, data map[string]interface{}, _ string) ([]models.CryptoPrice, error) {
	id := stringField(data, "id")
	if id == "" {
		return nil, ErrMissingID
	}

	kept := prices[:0]
	for _, p := range prices {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func togglePrice(prices []models.CryptoPrice, data map[string]interface{}, stamp string) ([]models.CryptoPrice, error) {
	id := stringField(data, "id")
	if id == "" {
		return nil, ErrMissingID
	}

	idx := indexOfPrice(prices, id)
	if idx == -1 {
		return nil, ErrNotFound
	}

	prices[idx].Enabled = !prices[idx].Enabled
	prices[idx].LastUpdated = stamp
	return prices, nil
}

// importPrices replaces the list when the CSV holds at least one row.
func importPrices(prices []models.CryptoPrice, data map[string]interface{}, stamp string) ([]models.CryptoPrice, error) {
	imported := ParsePriceCSV(stringField(data, "csvData"), stamp)
	if len(imported) == 0 {
		return prices, nil
	}
	return imported, nil
}

// bulkUpdatePrices patches each listed entry; unknown ids are skipped.
func bulkUpdatePrices(prices []models.CryptoPrice, data map[string]interface{}, stamp string) ([]models.CryptoPrice, error) {
	items, _ := data["prices"].([]interface{})
	for _, item := range items {
		patch, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		idx := indexOfPrice(prices, stringField(patch, "id"))
		if idx == -1 {
			continue
		}

		updated, err := mergePrice(prices[idx], patch, stamp)
		if err != nil {
			return nil, err
		}
		prices[idx] = updated
	}
	return prices, nil
}
