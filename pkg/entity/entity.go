package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Workout is a logged training session. UserID is the opaque identifier
// issued by the auth layer; workouts are never shared or reassigned.
type Workout struct {
	ID          uuid.UUID          `json:"id"`
	UserID      string             `json:"uid"`
	WorkoutDate time.Time          `json:"workout_date"`
	Name        string             `json:"name,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Exercises   []*WorkoutExercise `json:"exercises"`
}

// Exercise is a catalog entry shared across all users. Names are unique
// globally and an entry cannot be deleted while any workout references it.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"desc,omitempty"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkoutExercise places one catalog exercise into one workout at a position.
// (WorkoutID, Order) is unique within a workout.
type WorkoutExercise struct {
	ID         uuid.UUID `json:"id"`
	WorkoutID  uuid.UUID `json:"workout_id"`
	ExerciseID uuid.UUID `json:"exercise_id"`
	Order      int       `json:"order"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Exercise   *Exercise `json:"exercise"`
	Sets       []*Set    `json:"sets"`
}

// Set is one performed set. (WorkoutExerciseID, SetOrder) is unique.
type Set struct {
	ID                uuid.UUID `json:"id"`
	WorkoutExerciseID uuid.UUID `json:"workout_exercise_id"`
	SetOrder          int       `json:"set_order"`
	Reps              int       `json:"reps"`
	Weight            float64   `json:"weight"`
	Completed         bool      `json:"completed"`
	CreatedAt         time.Time `json:"created_at"`
}
