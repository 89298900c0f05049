package services

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf/v2"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/timeutil"
)

// priceRow is the CSV layout shared with import.
type priceRow struct {
	Symbol    string  `csv:"Symbol"`
	Name      string  `csv:"Name"`
	BuyPrice  float64 `csv:"BuyPrice"`
	SellPrice float64 `csv:"SellPrice"`
	Enabled   bool    `csv:"Enabled"`
}

type PriceExportService struct{}

func NewPriceExportService() *PriceExportService {
	return &PriceExportService{}
}

// WriteCSV writes the list in the layout ParsePriceCSV reads back.
func (s *PriceExportService) WriteCSV(w io.Writer, prices []models.CryptoPrice) error {
	rows := make([]*priceRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, &priceRow{
			Symbol:    p.Symbol,
			Name:      p.Name,
			BuyPrice:  p.BuyPrice,
			SellPrice: p.SellPrice,
			Enabled:   p.Enabled,
		})
	}

	if len(rows) == 0 {
		_, err := io.WriteString(w, PriceCSVHeader+"\n")
		return err
	}
	return gocsv.Marshal(rows, w)
}

// QuoteSheetPDF renders a one-page price sheet for printing.
func (s *PriceExportService) QuoteSheetPDF(prices []models.CryptoPrice, at time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(180, 10, "CapitalUY - Cotizaciones", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, fmt.Sprintf("Actualizado: %s", at.In(timeutil.UY).Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(30, 8, "Simbolo", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 8, "Nombre", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Compra (UYU)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Venta (UYU)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "Activo", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, p := range prices {
		active := "Si"
		if !p.Enabled {
			active = "No"
		}
		pdf.CellFormat(30, 7, p.Symbol, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 7, p.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", p.BuyPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", p.SellPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, active, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(180, 5, "Precios de referencia sujetos a confirmacion al momento de operar.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
