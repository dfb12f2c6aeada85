// Destructive maintenance tool: wipes all logged workout data (sets,
// workout_exercises, workouts, in that order) and leaves the exercise
// catalog in place. No transaction, no rollback.
package main

import (
	"context"
	"log"
	"time"

	"github.com/MisterFoxxSA/liftingdiarycourse/internal/repository"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/cleanup"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/config"
)

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	repo := repository.NewMaintenanceRepo(&dbCfg)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	log.Println("Clearing all workout data...")
	if err := repo.ClearWorkoutData(ctx); err != nil {
		cleanup.CleanUp()
		log.Fatal("clearing workout data error: " + err.Error())
	}
	log.Println("All workout data has been cleared, exercise catalog untouched")
	cleanup.CleanUp()
}
