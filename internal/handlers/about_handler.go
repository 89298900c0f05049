package handlers

import (
	"net/http"

	"capitaluy-backend/internal/services"
	"capitaluy-backend/pkg/utils"
)

type AboutHandler struct {
	Service *services.AboutService
}

func NewAboutHandler(service *services.AboutService) *AboutHandler {
	return &AboutHandler{Service: service}
}

func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Get(r.Context()))
}

func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if !decodeBody(w, r, &patch) {
		return
	}

	about, err := h.Service.Update(r.Context(), patch)
	if err != nil {
		saveFailed(w, "[About]", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"about":   about,
	})
}
