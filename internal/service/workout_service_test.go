package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/service"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type workoutMockState int

const (
	workoutStateSuccess = iota
	workoutStateDBError
	workoutStateNotFoundError
	workoutStateWrongOwner
	workoutStateUnknownExercise
	workoutStateDuplicateOrder
)

// Variables for tests
var (
	ownerID       = "user_2x7JfQm0sJqT1iJbWc3n"
	workoutID     = uuid.New()
	benchPressID  = uuid.New()
	testWorkoutAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	testWorkout   = entity.Workout{
		ID:          workoutID,
		UserID:      ownerID,
		WorkoutDate: testWorkoutAt,
		Name:        "Upper Body Strength",
		CreatedAt:   time.Now(),
	}
)

type workoutRepoMock struct {
	state workoutMockState
	// captured date window input for assertions
	lastDate time.Time
}

func (wrmock *workoutRepoMock) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	switch wrmock.state {
	case workoutStateUnknownExercise:
		return uuid.UUID{}, errorvalues.ErrExerciseNotFound
	case workoutStateDuplicateOrder:
		return uuid.UUID{}, errorvalues.ErrDuplicateOrder
	case workoutStateDBError:
		return uuid.UUID{}, errors.New("db error")
	default:
		return workoutID, nil
	}
}

func (wrmock *workoutRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	switch wrmock.state {
	case workoutStateNotFoundError:
		return nil, errorvalues.ErrWorkoutNotFound
	case workoutStateDBError:
		return nil, errors.New("db error")
	case workoutStateWrongOwner:
		other := testWorkout
		other.UserID = "user_2someoneelse00000000"
		return &other, nil
	default:
		return &testWorkout, nil
	}
}

func (wrmock *workoutRepoMock) GetByUserID(ctx context.Context, userID string) ([]*entity.Workout, error) {
	switch wrmock.state {
	case workoutStateDBError:
		return nil, errors.New("db error")
	default:
		return []*entity.Workout{&testWorkout}, nil
	}
}

func (wrmock *workoutRepoMock) GetByUserIDAndDate(ctx context.Context, userID string, date time.Time) ([]*entity.Workout, error) {
	wrmock.lastDate = date
	switch wrmock.state {
	case workoutStateDBError:
		return nil, errors.New("db error")
	default:
		return []*entity.Workout{&testWorkout}, nil
	}
}

func (wrmock *workoutRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch wrmock.state {
	case workoutStateNotFoundError:
		return errorvalues.ErrWorkoutNotFound
	case workoutStateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func TestLogWorkout(t *testing.T) {
	ctx := context.Background()
	req := service.CreateWorkoutRequest{
		WorkoutDate: testWorkoutAt,
		Name:        "Upper Body Strength",
		Exercises: []service.CreateWorkoutExerciseRequest{
			{
				ExerciseID: benchPressID,
				Order:      0,
				Sets: []service.CreateSetRequest{
					{SetOrder: 0, Reps: 8, Weight: 185, Completed: true},
					{SetOrder: 1, Reps: 8, Weight: 185, Completed: true},
				},
			},
		},
	}
	t.Run("success", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateSuccess})
		workout, err := serv.LogWorkout(ctx, ownerID, &req)
		assert.NoError(t, err)
		require.NotNil(t, workout)
		assert.Equal(t, workoutID, workout.ID)
	})
	t.Run("unknown exercise", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateUnknownExercise})
		_, err := serv.LogWorkout(ctx, ownerID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	t.Run("duplicate exercise order", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateDuplicateOrder})
		_, err := serv.LogWorkout(ctx, ownerID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateOrder)
	})
	t.Run("invalid set reps", func(t *testing.T) {
		bad := req
		bad.Exercises = []service.CreateWorkoutExerciseRequest{
			{
				ExerciseID: benchPressID,
				Order:      0,
				Sets:       []service.CreateSetRequest{{SetOrder: 0, Reps: 0, Weight: 100}},
			},
		}
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateSuccess})
		_, err := serv.LogWorkout(ctx, ownerID, &bad)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateDBError})
		_, err := serv.LogWorkout(ctx, ownerID, &req)
		assert.Error(t, err)
	})
}

func TestGetUserWorkouts(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateSuccess})
		workouts, err := serv.GetUserWorkouts(ctx, ownerID)
		assert.NoError(t, err)
		require.Len(t, workouts, 1)
		assert.Equal(t, testWorkout, *workouts[0])
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateDBError})
		_, err := serv.GetUserWorkouts(ctx, ownerID)
		assert.Error(t, err)
	})
}

func TestGetUserWorkoutsByDate(t *testing.T) {
	ctx := context.Background()
	t.Run("passes the date through untouched", func(t *testing.T) {
		mock := &workoutRepoMock{state: workoutStateSuccess}
		serv := service.NewWorkoutService(mock)
		date := time.Date(2024, 1, 15, 14, 42, 0, 0, time.Local)
		workouts, err := serv.GetUserWorkoutsByDate(ctx, ownerID, date)
		assert.NoError(t, err)
		require.Len(t, workouts, 1)
		// window computation belongs to the repository layer
		assert.Equal(t, date, mock.lastDate)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateDBError})
		_, err := serv.GetUserWorkoutsByDate(ctx, ownerID, time.Now())
		assert.Error(t, err)
	})
}

func TestDeleteWorkout(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateSuccess})
		err := serv.DeleteWorkout(ctx, workoutID, ownerID)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateNotFoundError})
		err := serv.DeleteWorkout(ctx, workoutID, ownerID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutNotFound)
	})
	t.Run("wrong owner", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateWrongOwner})
		err := serv.DeleteWorkout(ctx, workoutID, ownerID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewWorkoutService(&workoutRepoMock{state: workoutStateDBError})
		err := serv.DeleteWorkout(ctx, workoutID, ownerID)
		assert.Error(t, err)
	})
}
