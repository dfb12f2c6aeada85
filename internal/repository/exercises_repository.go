package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/cleanup"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO exercises (name, description, muscle_group) VALUES ($1, $2, $3) RETURNING id;`,
		exercise.Name,
		exercise.Description,
		exercise.MuscleGroup,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrExerciseExists
			}
		}
		return uuid.UUID{}, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var exercise entity.Exercise
	exercise.ID = id
	row := er.conn.QueryRow(ctx, `SELECT name, COALESCE(description, ''), COALESCE(muscle_group, ''), created_at FROM exercises WHERE id = $1;`, id)
	if err := row.Scan(&exercise.Name, &exercise.Description, &exercise.MuscleGroup, &exercise.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &exercise, nil
}

func (er *ExercisesRepository) List(ctx context.Context) ([]*entity.Exercise, error) {
	exercises := make([]*entity.Exercise, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, name, COALESCE(description, ''), COALESCE(muscle_group, ''), created_at
		FROM exercises ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.Name, &e.Description, &e.MuscleGroup, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning exercises: " + rows.Err().Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: some workout still references the exercise
			case "23503":
				return errorvalues.ErrExerciseInUse
			}
		}
		return errors.New("error deleting exercise: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}
