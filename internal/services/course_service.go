package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
)

// Course actions accepted by Apply
const (
	CourseActionAdd    = "add"
	CourseActionUpdate = "update"
	CourseActionDelete = "delete"
)

type CourseService struct {
	Repo  *repositories.CourseRepository
	last  lastKnown[[]models.Course]
	newID func() string
}

func NewCourseService(repo *repositories.CourseRepository) *CourseService {
	return &CourseService{Repo: repo, newID: uuid.NewString}
}

func (s *CourseService) List(ctx context.Context) []models.Course {
	return readOrFallback(ctx, "courses", &s.last, s.Repo.List, models.DefaultCourses)
}

// Apply runs one catalog action and persists the whole catalog.
// The returned course is set for add only.
func (s *CourseService) Apply(ctx context.Context, action string, patch map[string]interface{}) ([]models.Course, *models.Course, error) {
	if patch == nil {
		patch = map[string]interface{}{}
	}

	var apply func([]models.Course, map[string]interface{}) ([]models.Course, *models.Course, error)
	switch action {
	case CourseActionAdd:
		apply = s.add
	case CourseActionUpdate:
		apply = s.update
	case CourseActionDelete:
		apply = s.delete
	default:
		return nil, nil, ErrInvalidAction
	}

	current, err := loadForWrite(ctx, s.Repo.List, models.DefaultCourses)
	if err != nil {
		return nil, nil, fmt.Errorf("load courses: %w", err)
	}

	courses, added, err := apply(append([]models.Course(nil), current...), patch)
	if err != nil {
		return nil, nil, err
	}

	if err := s.Repo.SaveAll(ctx, courses); err != nil {
		return nil, nil, err
	}
	s.last.remember(courses)

	zap.S().Infow("[Courses] catalog updated", "action", action, "count", len(courses))
	return courses, added, nil
}

func (s *CourseService) add(courses []models.Course, patch map[string]interface{}) ([]models.Course, *models.Course, error) {
	var course models.Course
	if err := mergePatch(models.NewCourseTemplate(), without(patch, "id"), &course); err != nil {
		return nil, nil, fmt.Errorf("merge course: %w", err)
	}

	course.ID = s.newID()
	if stringField(patch, "levelColor") == "" {
		course.LevelColor = models.LevelColor(course.Level)
	}
	if course.Features == nil {
		course.Features = []string{}
	}

	return append(courses, course), &course, nil
}

func (s *CourseService) update(courses []models.Course, patch map[string]interface{}) ([]models.Course, *models.Course, error) {
	id := stringField(patch, "id")
	if id == "" {
		return nil, nil, ErrMissingID
	}

	idx := indexOfCourse(courses, id)
	if idx == -1 {
		return nil, nil, ErrNotFound
	}

	var updated models.Course
	if err := mergePatch(courses[idx], patch, &updated); err != nil {
		return nil, nil, fmt.Errorf("merge course: %w", err)
	}
	updated.ID = id

	// A level change without an explicit color picks the level's badge
	if _, ok := patch["level"]; ok && stringField(patch, "levelColor") == "" {
		updated.LevelColor = models.LevelColor(updated.Level)
	}
	if updated.Features == nil {
		updated.Features = []string{}
	}

	courses[idx] = updated
	return courses, nil, nil
}

func (s *CourseService) delete(courses []models.Course, patch map[string]interface{}) ([]models.Course, *models.Course, error) {
	id := stringField(patch, "id")
	if id == "" {
		return nil, nil, ErrMissingID
	}

	idx := indexOfCourse(courses, id)
	if idx == -1 {
		return nil, nil, ErrNotFound
	}

	return append(courses[:idx], courses[idx+1:]...), nil, nil
}

func indexOfCourse(courses []models.Course, id string) int {
	for i, c := range courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}
