package handlers

import (
	"net/http"

	"capitaluy-backend/internal/services"
	"capitaluy-backend/pkg/utils"
)

type SiteConfigHandler struct {
	Service *services.SiteConfigService
}

func NewSiteConfigHandler(service *services.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{Service: service}
}

func (h *SiteConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Get(r.Context()))
}

func (h *SiteConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if !decodeBody(w, r, &patch) {
		return
	}

	cfg, err := h.Service.Update(r.Context(), patch)
	if err != nil {
		saveFailed(w, "[Config]", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"config":  cfg,
	})
}
