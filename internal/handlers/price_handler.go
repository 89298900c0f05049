package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/services"
	"capitaluy-backend/internal/timeutil"
	"capitaluy-backend/pkg/utils"
)

type PriceHandler struct {
	Service  *services.CryptoPriceService
	Exporter *services.PriceExportService
}

func NewPriceHandler(service *services.CryptoPriceService, exporter *services.PriceExportService) *PriceHandler {
	return &PriceHandler{Service: service, Exporter: exporter}
}

func (h *PriceHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context()))
}

// Apply handles {action, data} for every price-list action.
func (h *PriceHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req models.PriceActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.Service.Apply(r.Context(), req.Action, req.Data)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidAction):
		utils.Error(w, http.StatusBadRequest, "Invalid action")
		return
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Crypto not found")
		return
	case errors.Is(err, services.ErrAlreadyExists):
		utils.Error(w, http.StatusBadRequest, "Crypto already exists")
		return
	case errors.Is(err, services.ErrMissingSymbol):
		utils.Error(w, http.StatusBadRequest, "Symbol is required")
		return
	case errors.Is(err, services.ErrMissingID):
		utils.Error(w, http.StatusBadRequest, "Crypto id is required")
		return
	default:
		saveFailed(w, "[Prices]", err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Export serves the list as CSV (default) or as a printable PDF.
func (h *PriceHandler) Export(w http.ResponseWriter, r *http.Request) {
	prices := h.Service.List(r.Context()).Cryptos
	now := timeutil.Now()
	base := fmt.Sprintf("cotizaciones-%s", now.Format(timeutil.DateLayout))

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, base))
		if err := h.Exporter.WriteCSV(w, prices); err != nil {
			zap.S().Errorw("[Prices] csv export failed", "error", err)
		}
	case "pdf":
		data, err := h.Exporter.QuoteSheetPDF(prices, now)
		if err != nil {
			zap.S().Errorw("[Prices] pdf export failed", "error", err)
			utils.Error(w, http.StatusInternalServerError, "Error al generar el PDF")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, base))
		w.Write(data)
	default:
		utils.Error(w, http.StatusBadRequest, "Formato no soportado")
	}
}
