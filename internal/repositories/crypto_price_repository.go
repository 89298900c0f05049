package repositories

import (
	"context"

	"capitaluy-backend/internal/models"
)

type CryptoPriceRepository struct {
	Docs *DocumentRepository
}

func NewCryptoPriceRepository(docs *DocumentRepository) *CryptoPriceRepository {
	return &CryptoPriceRepository{Docs: docs}
}

func (r *CryptoPriceRepository) List(ctx context.Context) ([]models.CryptoPrice, error) {
	var prices []models.CryptoPrice
	if err := r.Docs.Load(ctx, CryptoPricesKey, &prices); err != nil {
		return nil, err
	}
	if prices == nil {
		prices = []models.CryptoPrice{}
	}
	return prices, nil
}

// SaveAll replaces the whole price list.
func (r *CryptoPriceRepository) SaveAll(ctx context.Context, prices []models.CryptoPrice) error {
	return r.Docs.Save(ctx, CryptoPricesKey, prices)
}
