package repositories

import (
	"context"

	"capitaluy-backend/internal/models"
)

type CourseRepository struct {
	Docs *DocumentRepository
}

func NewCourseRepository(docs *DocumentRepository) *CourseRepository {
	return &CourseRepository{Docs: docs}
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.Docs.Load(ctx, CoursesKey, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// SaveAll replaces the whole catalog.
func (r *CourseRepository) SaveAll(ctx context.Context, courses []models.Course) error {
	return r.Docs.Save(ctx, CoursesKey, courses)
}
