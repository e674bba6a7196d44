package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rohanjx/workouthub-backend/internal/models"
	"github.com/rohanjx/workouthub-backend/internal/store"
)

// dateLayout is the HTML date input wire format.
const dateLayout = "2006-01-02"

// ValidationError reports a malformed workout submission, identifying the
// offending field so the form layer can redisplay it with feedback.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// WorkoutService validates and records workout entries on behalf of an
// authenticated user and retrieves that user's history.
type WorkoutService struct {
	workouts store.WorkoutStore
}

// NewWorkoutService creates a WorkoutService over the given store.
func NewWorkoutService(workouts store.WorkoutStore) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// LogEntry validates the raw form fields and persists a new entry owned by
// authorID. Both the generic add form and the per-exercise form converge
// here; any validation failure means no write happens at all.
func (s *WorkoutService) LogEntry(ctx context.Context, authorID uuid.UUID, exercise, dateStr, setsStr, repsStr, kgsStr string) (*models.WorkoutEntry, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return nil, &ValidationError{Field: "exercise", Message: "name of exercise is required"}
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "date must be a valid calendar date"}
	}

	sets, err := strconv.Atoi(strings.TrimSpace(setsStr))
	if err != nil || sets <= 0 {
		return nil, &ValidationError{Field: "sets", Message: "number of sets must be a positive integer"}
	}

	reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
	if err != nil || reps <= 0 {
		return nil, &ValidationError{Field: "reps", Message: "number of reps must be a positive integer"}
	}

	kgs, err := strconv.ParseFloat(strings.TrimSpace(kgsStr), 64)
	if err != nil || kgs < 0 {
		return nil, &ValidationError{Field: "kgs", Message: "weight must be a non-negative number"}
	}

	return s.workouts.Create(ctx, authorID, date, NormalizeExercise(exercise), sets, reps, kgs)
}

// ListForUser returns all entries owned by userID in insertion order.
// A user with no entries gets an empty slice, never an error.
func (s *WorkoutService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.WorkoutEntry, error) {
	return s.workouts.ListByAuthor(ctx, userID)
}

// NormalizeExercise title-cases a free-text exercise label so "bench press"
// and "Bench Press" land on the same name. A Caser is not safe for concurrent
// use, so one is built per call.
func NormalizeExercise(name string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
}
