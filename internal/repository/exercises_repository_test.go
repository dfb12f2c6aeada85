package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/repository"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

func TestCreateExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExercisesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO exercises (name, description, muscle_group) VALUES ($1, $2, $3) RETURNING id;`)
	exercise := entity.Exercise{
		Name:        "Bench Press",
		Description: "Barbell press on a flat bench",
		MuscleGroup: "chest",
	}
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(exercise.Name, exercise.Description, exercise.MuscleGroup).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, &exercise)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("unique violation on name", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(exercise.Name, exercise.Description, exercise.MuscleGroup).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &exercise)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(exercise.Name, exercise.Description, exercise.MuscleGroup).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &exercise)
		assert.Error(t, err)
	})
}

func TestGetExerciseByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExercisesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT name, COALESCE(description, ''), COALESCE(muscle_group, ''), created_at FROM exercises WHERE id = $1;`)
	exercise := entity.Exercise{
		ID:          uuid.New(),
		Name:        "Deadlift",
		MuscleGroup: "back",
		CreatedAt:   time.Now(),
	}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(exercise.ID).
			WillReturnRows(pgxmock.NewRows([]string{"name", "description", "muscle_group", "created_at"}).
				AddRow(exercise.Name, exercise.Description, exercise.MuscleGroup, exercise.CreatedAt),
			)
		result, err := repo.GetByID(ctx, exercise.ID)
		assert.NoError(t, err)
		assert.Equal(t, exercise, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(exercise.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, exercise.ID)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
}

func TestListExercises(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExercisesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, COALESCE(description, ''), COALESCE(muscle_group, ''), created_at
		FROM exercises ORDER BY name;`)
	exercises := []*entity.Exercise{
		{ID: uuid.New(), Name: "Bench Press", MuscleGroup: "chest", CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Overhead Press", MuscleGroup: "shoulders", CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Pull-ups", MuscleGroup: "back", CreatedAt: time.Now()},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "description", "muscle_group", "created_at"})
		for _, e := range exercises {
			rows.AddRow(e.ID, e.Name, e.Description, e.MuscleGroup, e.CreatedAt)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, len(exercises), len(result))
		for i := range result {
			assert.Equal(t, *exercises[i], *result[i])
		}
	})
	t.Run("empty catalog", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "muscle_group", "created_at"}))
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, result, 0)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestDeleteExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewExercisesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM exercises WHERE id = $1;`)
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("restricted while referenced", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseInUse)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
}
