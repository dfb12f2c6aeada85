package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/repository"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type ExerciseService struct {
	repo repository.ExercisesRepositoryI
}

func NewExerciseService(exercisesRepo repository.ExercisesRepositoryI) *ExerciseService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &ExerciseService{
		repo: exercisesRepo,
	}
}

func (es *ExerciseService) CreateExercise(ctx context.Context, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.Exercise{
		Name:        req.Name,
		Description: req.Description,
		MuscleGroup: req.MuscleGroup,
	}
	id, err := es.repo.Create(ctx, &e)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExerciseService) GetExercise(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExerciseService) ListExercises(ctx context.Context) ([]*entity.Exercise, error) {
	exercises, err := es.repo.List(ctx)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExerciseService) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	err := es.repo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound), errors.Is(err, errorvalues.ErrExerciseInUse):
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}
