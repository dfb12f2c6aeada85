package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/repository"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type WorkoutService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutService{
		repo: workoutsRepo,
	}
}

func (ws *WorkoutService) LogWorkout(ctx context.Context, userID string, req *CreateWorkoutRequest) (*entity.Workout, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	workoutDate := req.WorkoutDate
	if workoutDate.IsZero() {
		workoutDate = time.Now()
	}
	w := entity.Workout{
		UserID:      userID,
		WorkoutDate: workoutDate,
		Name:        req.Name,
		Notes:       req.Notes,
		Exercises:   make([]*entity.WorkoutExercise, 0, len(req.Exercises)),
	}
	for _, weReq := range req.Exercises {
		if err := validateStruct(weReq); err != nil {
			return nil, err
		}
		we := entity.WorkoutExercise{
			ExerciseID: weReq.ExerciseID,
			Order:      weReq.Order,
			Notes:      weReq.Notes,
			Sets:       make([]*entity.Set, 0, len(weReq.Sets)),
		}
		for _, setReq := range weReq.Sets {
			if err := validateStruct(setReq); err != nil {
				return nil, err
			}
			we.Sets = append(we.Sets, &entity.Set{
				SetOrder:  setReq.SetOrder,
				Reps:      setReq.Reps,
				Weight:    setReq.Weight,
				Completed: setReq.Completed,
			})
		}
		w.Exercises = append(w.Exercises, &we)
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound),
			errors.Is(err, errorvalues.ErrDuplicateOrder),
			errors.Is(err, errorvalues.ErrDuplicateSetOrder):
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	workout, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutService) GetUserWorkouts(ctx context.Context, userID string) ([]*entity.Workout, error) {
	workouts, err := ws.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ws *WorkoutService) GetUserWorkoutsByDate(ctx context.Context, userID string, date time.Time) ([]*entity.Workout, error) {
	workouts, err := ws.repo.GetByUserIDAndDate(ctx, userID, date)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ws *WorkoutService) DeleteWorkout(ctx context.Context, workoutID uuid.UUID, userID string) error {
	workout, err := ws.repo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	if workout.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = ws.repo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}
