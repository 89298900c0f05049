package handlers

import (
	"net/http"

	"capitaluy-backend/internal/services"
	"capitaluy-backend/pkg/utils"
)

type ContactMessageHandler struct {
	Service *services.ContactMessageService
}

func NewContactMessageHandler(service *services.ContactMessageService) *ContactMessageHandler {
	return &ContactMessageHandler{Service: service}
}

func (h *ContactMessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Get(r.Context()))
}

func (h *ContactMessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if !decodeBody(w, r, &patch) {
		return
	}

	msg, err := h.Service.Update(r.Context(), patch)
	if err != nil {
		saveFailed(w, "[ContactMessage]", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": msg,
	})
}
