package handlers

import (
	"errors"
	"net/http"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/services"
	"capitaluy-backend/pkg/utils"
)

type CourseHandler struct {
	Service *services.CourseService
}

func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{Service: service}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.CourseListResponse{
		Courses: h.Service.List(r.Context()),
	})
}

// Apply handles {action: add|update|delete, course: {...}}.
func (h *CourseHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req models.CourseActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	courses, added, err := h.Service.Apply(r.Context(), req.Action, req.Course)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidAction):
		utils.Error(w, http.StatusBadRequest, "Accion no valida")
		return
	case errors.Is(err, services.ErrMissingID):
		utils.Error(w, http.StatusBadRequest, "Falta el id del curso")
		return
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Curso no encontrado")
		return
	default:
		saveFailed(w, "[Courses]", err)
		return
	}

	utils.JSON(w, http.StatusOK, models.CourseListResponse{
		Success: true,
		Courses: courses,
		Course:  added,
	})
}
