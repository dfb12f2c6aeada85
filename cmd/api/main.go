// @title Lifting Diary API
// @description API for personal workout tracking
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/MisterFoxxSA/liftingdiarycourse/internal/api"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/repository"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/service"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/cleanup"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/config"
	jwtservice "github.com/MisterFoxxSA/liftingdiarycourse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	workoutService := service.NewWorkoutService(repository.NewWorkoutsRepo(&dbCfg))
	exerciseService := service.NewExerciseService(repository.NewExercisesRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:     userService,
		WorkoutService:  workoutService,
		ExerciseService: exerciseService,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
