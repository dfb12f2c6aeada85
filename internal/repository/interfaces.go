package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ExercisesRepositoryI interface {
	// Creates new catalog exercise. Name must be globally unique
	Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error)
	// Searches exercise with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Lists the whole catalog ordered by name
	List(ctx context.Context) ([]*entity.Exercise, error)
	// Deletes exercise with id. Fails while any workout references it
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkoutsRepositoryI interface {
	// Creates workout with its nested exercises and sets in one transaction.
	// In workout only UserID, WorkoutDate, Name, Notes and the nested
	// Order/ExerciseID/set fields are necessary
	Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error)
	// Searches workout with given id, without nested data
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	// Lists hydrated workouts owned by uid, newest first
	GetByUserID(ctx context.Context, userID string) ([]*entity.Workout, error)
	// Lists hydrated workouts owned by uid whose workout_date falls on the
	// calendar day of date (in date's location), newest first
	GetByUserIDAndDate(ctx context.Context, userID string, date time.Time) ([]*entity.Workout, error)
	// Deletes workout with id. Children go away by cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type MaintenanceRepositoryI interface {
	// Wipes all sets, workout_exercises and workouts in that strict order.
	// Leaves the exercise catalog untouched
	ClearWorkoutData(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
