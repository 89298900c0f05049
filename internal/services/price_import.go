package services

import (
	"strings"

	"capitaluy-backend/internal/models"
)

// PriceCSVHeader is the header line export writes and import skips.
const PriceCSVHeader = "Symbol,Name,BuyPrice,SellPrice,Enabled"

// ParsePriceCSV reads Symbol,Name,BuyPrice,SellPrice[,Enabled] rows. The first
// line is always treated as a header. Cells are split on bare commas with no
// quoting. Rows with fewer than four cells are dropped, prices keep their leading
// number and otherwise become 0 and Enabled is true unless it is literally "false".
func ParsePriceCSV(csvData string, stamp string) []models.CryptoPrice {
	lines := strings.Split(strings.TrimSpace(csvData), "\n")

	prices := []models.CryptoPrice{}
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")

		cols := strings.Split(line, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if len(cols) < 4 {
			continue
		}

		enabled := true
		if len(cols) > 4 && cols[4] == "false" {
			enabled = false
		}

		prices = append(prices, models.CryptoPrice{
			ID:          strings.ToLower(cols[0]),
			Symbol:      strings.ToUpper(cols[0]),
			Name:        cols[1],
			BuyPrice:    toNumber(cols[2]),
			SellPrice:   toNumber(cols[3]),
			Enabled:     enabled,
			LastUpdated: stamp,
		})
	}
	return prices
}
