package models

type CryptoPrice struct {
	ID          string  `json:"id"`
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	BuyPrice    float64 `json:"buyPrice"`
	SellPrice   float64 `json:"sellPrice"`
	Enabled     bool    `json:"enabled"`
	LastUpdated string  `json:"lastUpdated"`
}

// DefaultCryptoPrices seeds the list with the USDT quote the storefront shows.
func DefaultCryptoPrices(stamp string) []CryptoPrice {
	return []CryptoPrice{
		{
			ID:          "usdt",
			Symbol:      "USDT",
			Name:        "Tether",
			BuyPrice:    43.50,
			SellPrice:   42.80,
			Enabled:     true,
			LastUpdated: stamp,
		},
	}
}

// PriceActionRequest is the POST /api/prices body.
type PriceActionRequest struct {
	Action string                 `json:"action"`
	Data   map[string]interface{} `json:"data"`
}

type PriceListResponse struct {
	Cryptos     []CryptoPrice `json:"cryptos"`
	LastUpdated string        `json:"lastUpdated"`
}
