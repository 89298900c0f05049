package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"capitaluy-backend/pkg/utils"
)

// maxBodyBytes bounds request bodies; course images travel inline as data URLs.
const maxBodyBytes = 10 << 20

// decodeBody reads a JSON body into v, answering 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.Error(w, http.StatusBadRequest, "Solicitud invalida")
		return false
	}
	return true
}

// saveFailed logs a store failure and answers 500.
func saveFailed(w http.ResponseWriter, tag string, err error) {
	zap.S().Errorw(tag+" save failed", "error", err)
	utils.Error(w, http.StatusInternalServerError, "Error al guardar")
}
