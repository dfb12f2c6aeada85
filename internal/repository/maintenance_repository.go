package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/cleanup"
)

type MaintenanceRepository struct {
	conn PgConnection
}

func NewMaintenanceRepo(cfg DBConfig) *MaintenanceRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for maintenanceRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for maintenanceRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MaintenanceRepository{
		conn: pool,
	}
}

func NewMaintenanceRepoWithConn(conn PgConnection) *MaintenanceRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for maintenanceRepo: " + err.Error())
	}
	return &MaintenanceRepository{
		conn: conn,
	}
}

// ClearWorkoutData deletes children before parents so the wipe works even
// when cascades are misconfigured. Runs outside a transaction: a failure
// mid-sequence leaves the store partially cleared. Exercise catalog stays.
func (mr *MaintenanceRepository) ClearWorkoutData(ctx context.Context) error {
	_, err := mr.conn.Exec(ctx, `DELETE FROM sets;`)
	if err != nil {
		return errors.New("clearing sets error: " + err.Error())
	}
	_, err = mr.conn.Exec(ctx, `DELETE FROM workout_exercises;`)
	if err != nil {
		return errors.New("clearing workout exercises error: " + err.Error())
	}
	_, err = mr.conn.Exec(ctx, `DELETE FROM workouts;`)
	if err != nil {
		return errors.New("clearing workouts error: " + err.Error())
	}
	return nil
}
