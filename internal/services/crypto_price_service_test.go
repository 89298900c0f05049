package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
)

const testStamp = "2024-03-01T12:00:00-03:00"

func newPriceService(t *testing.T) (*CryptoPriceService, *flakyStore) {
	docs, s := newDocs(t)
	svc := NewCryptoPriceService(repositories.NewCryptoPriceRepository(docs))
	svc.now = func() string { return testStamp }
	return svc, s
}

func TestParsePriceCSV(t *testing.T) {
	prices := ParsePriceCSV("Symbol,Name,BuyPrice,SellPrice,Enabled\nUSDT,Tether,43.50,42.80,true", testStamp)

	require.Len(t, prices, 1)
	assert.Equal(t, models.CryptoPrice{
		ID:          "usdt",
		Symbol:      "USDT",
		Name:        "Tether",
		BuyPrice:    43.50,
		SellPrice:   42.80,
		Enabled:     true,
		LastUpdated: testStamp,
	}, prices[0])
}

func TestParsePriceCSVEdgeCases(t *testing.T) {
	csv := "Symbol,Name,BuyPrice,SellPrice,Enabled\r\n" +
		" btc , Bitcoin , abc , 2500000 \r\n" +
		"eth,Ether,1,2,false\r\n" +
		"short,row,1\r\n" +
		"dai,Dai,1,1,FALSE\n"

	prices := ParsePriceCSV(csv, testStamp)
	require.Len(t, prices, 3)

	assert.Equal(t, "btc", prices[0].ID)
	assert.Equal(t, "BTC", prices[0].Symbol)
	assert.Equal(t, "Bitcoin", prices[0].Name)
	assert.Equal(t, 0.0, prices[0].BuyPrice)
	assert.Equal(t, 2500000.0, prices[0].SellPrice)
	assert.True(t, prices[0].Enabled)

	assert.False(t, prices[1].Enabled)
	// Only the exact lowercase literal disables a row
	assert.True(t, prices[2].Enabled)
}

func TestParsePriceCSVHeaderOnly(t *testing.T) {
	assert.Empty(t, ParsePriceCSV("Symbol,Name,BuyPrice,SellPrice,Enabled", testStamp))
	assert.Empty(t, ParsePriceCSV("", testStamp))
}

func TestParsePriceCSVNumbers(t *testing.T) {
	csv := "Symbol,Name,BuyPrice,SellPrice,Enabled\n" +
		"usdt,Tether,43.50 UYU,$42,true\n" +
		"btc,Bitcoin,NaN,Inf\n" +
		"eth,Ether,-Infinity,1e999\n"

	prices := ParsePriceCSV(csv, testStamp)
	require.Len(t, prices, 3)

	assert.Equal(t, 43.5, prices[0].BuyPrice)
	assert.Equal(t, 0.0, prices[0].SellPrice)
	for _, p := range prices[1:] {
		assert.Equal(t, 0.0, p.BuyPrice, p.ID)
		assert.Equal(t, 0.0, p.SellPrice, p.ID)
	}
}

func TestPriceImportStoresNonFiniteAsZero(t *testing.T) {
	svc, s := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionImport, map[string]interface{}{
		"csvData": "Symbol,Name,BuyPrice,SellPrice,Enabled\nUSDT,Tether,NaN,42.80,true",
	})
	require.NoError(t, err)
	require.Len(t, resp.Cryptos, 1)
	assert.Equal(t, 0.0, resp.Cryptos[0].BuyPrice)
	assert.Equal(t, 42.80, resp.Cryptos[0].SellPrice)
	assert.Equal(t, 1, s.puts)
	assert.Equal(t, resp.Cryptos, svc.List(ctx).Cryptos)
}

func TestPriceImportReplacesList(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionImport, map[string]interface{}{
		"csvData": "Symbol,Name,BuyPrice,SellPrice,Enabled\nBTC,Bitcoin,1,2\nETH,Ether,3,4,false",
	})
	require.NoError(t, err)
	require.Len(t, resp.Cryptos, 2)
	assert.Equal(t, "btc", resp.Cryptos[0].ID)
	assert.Equal(t, testStamp, resp.LastUpdated)

	// Header-only import leaves the list unchanged
	resp, err = svc.Apply(ctx, PriceActionImport, map[string]interface{}{"csvData": "Symbol,Name"})
	require.NoError(t, err)
	assert.Len(t, resp.Cryptos, 2)
	assert.Len(t, svc.List(ctx).Cryptos, 2)
}

func TestPriceToggleTwiceRestores(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionToggle, map[string]interface{}{"id": "usdt"})
	require.NoError(t, err)
	assert.False(t, resp.Cryptos[0].Enabled)

	resp, err = svc.Apply(ctx, PriceActionToggle, map[string]interface{}{"id": "usdt"})
	require.NoError(t, err)
	assert.True(t, resp.Cryptos[0].Enabled)

	_, err = svc.Apply(ctx, PriceActionToggle, map[string]interface{}{"id": "btc"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceUpdate(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionUpdate, map[string]interface{}{
		"id":        "usdt",
		"buyPrice":  "44.10",
		"sellPrice": 43.2,
	})
	require.NoError(t, err)

	usdt := resp.Cryptos[0]
	assert.Equal(t, 44.10, usdt.BuyPrice)
	assert.Equal(t, 43.2, usdt.SellPrice)
	assert.Equal(t, "Tether", usdt.Name)
	assert.True(t, usdt.Enabled)
	assert.Equal(t, testStamp, usdt.LastUpdated)

	_, err = svc.Apply(ctx, PriceActionUpdate, map[string]interface{}{"id": "btc", "buyPrice": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceUpdateNonFiniteBecomesZero(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionUpdate, map[string]interface{}{
		"id":        "usdt",
		"buyPrice":  "Inf",
		"sellPrice": "NaN",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Cryptos[0].BuyPrice)
	assert.Equal(t, 0.0, resp.Cryptos[0].SellPrice)
	assert.Equal(t, resp.Cryptos, svc.List(ctx).Cryptos)
}

func TestPriceAdd(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionAdd, map[string]interface{}{
		"symbol":    "btc",
		"name":      "Bitcoin",
		"buyPrice":  2600000,
		"sellPrice": 2500000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Cryptos, 2)

	btc := resp.Cryptos[1]
	assert.Equal(t, "btc", btc.ID)
	assert.Equal(t, "BTC", btc.Symbol)
	assert.True(t, btc.Enabled)

	_, err = svc.Apply(ctx, PriceActionAdd, map[string]interface{}{"symbol": "BTC"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Apply(ctx, PriceActionAdd, map[string]interface{}{"name": "Sin simbolo"})
	assert.ErrorIs(t, err, ErrMissingSymbol)
}

func TestPriceDelete(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionDelete, map[string]interface{}{"id": "btc"})
	require.NoError(t, err)
	assert.Len(t, resp.Cryptos, 1)

	resp, err = svc.Apply(ctx, PriceActionDelete, map[string]interface{}{"id": "usdt"})
	require.NoError(t, err)
	assert.Empty(t, resp.Cryptos)
	assert.Empty(t, svc.List(ctx).Cryptos)
}

func TestPriceBulkUpdateSkipsUnknown(t *testing.T) {
	svc, _ := newPriceService(t)
	ctx := context.Background()

	resp, err := svc.Apply(ctx, PriceActionBulkUpdate, map[string]interface{}{
		"prices": []interface{}{
			map[string]interface{}{"id": "usdt", "buyPrice": 45, "sellPrice": 44},
			map[string]interface{}{"id": "doge", "buyPrice": 1, "sellPrice": 1},
			"not an object",
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Cryptos, 1)
	assert.Equal(t, 45.0, resp.Cryptos[0].BuyPrice)
	assert.Equal(t, 44.0, resp.Cryptos[0].SellPrice)
}

func TestPriceInvalidAction(t *testing.T) {
	svc, s := newPriceService(t)

	_, err := svc.Apply(context.Background(), "sell", nil)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Zero(t, s.puts)
}
