package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateSetRequest struct {
	SetOrder  int     `validate:"min=0"`
	Reps      int     `validate:"required,min=1"`
	Weight    float64 `validate:"min=0"`
	Completed bool
}

type CreateWorkoutExerciseRequest struct {
	ExerciseID uuid.UUID `validate:"required"`
	Order      int       `validate:"min=0"`
	Notes      string    `validate:"max=2000"`
	Sets       []CreateSetRequest
}

type CreateWorkoutRequest struct {
	WorkoutDate time.Time
	Name        string `validate:"max=255"`
	Notes       string `validate:"max=2000"`
	Exercises   []CreateWorkoutExerciseRequest
}

type CreateExerciseRequest struct {
	Name        string `validate:"required,min=2,max=255"`
	Description string `validate:"max=2000"`
	MuscleGroup string `validate:"max=100"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type WorkoutServiceI interface {
	// Validates and stores a new workout with its nested exercises and sets
	LogWorkout(ctx context.Context, userID string, req *CreateWorkoutRequest) (*entity.Workout, error)
	// Full history for the user, hydrated, newest first
	GetUserWorkouts(ctx context.Context, userID string) ([]*entity.Workout, error)
	// Workouts whose workout_date falls on date's calendar day, hydrated, newest first
	GetUserWorkoutsByDate(ctx context.Context, userID string, date time.Time) ([]*entity.Workout, error)
	// Removes a workout after checking ownership
	DeleteWorkout(ctx context.Context, workoutID uuid.UUID, userID string) error
}

type ExerciseServiceI interface {
	CreateExercise(ctx context.Context, req *CreateExerciseRequest) (*entity.Exercise, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	ListExercises(ctx context.Context) ([]*entity.Exercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error
}
