package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrWorkoutNotFound = errors.New("workout doesn't exist")
	ErrWrongOwner      = errors.New("workout has different owner")

	ErrExerciseExists   = errors.New("exercise with such name already exists")
	ErrExerciseNotFound = errors.New("exercise doesn't exist")
	ErrExerciseInUse    = errors.New("exercise is referenced by workouts")

	ErrDuplicateOrder    = errors.New("duplicate exercise order within workout")
	ErrDuplicateSetOrder = errors.New("duplicate set order within exercise")
)
