package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MisterFoxxSA/liftingdiarycourse/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	workoutService  service.WorkoutServiceI
	exerciseService service.ExerciseServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	WorkoutService  service.WorkoutServiceI
	ExerciseService service.ExerciseServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		workoutService:  servicesOptions.WorkoutService,
		exerciseService: servicesOptions.ExerciseService,
		jwtService:      servicesOptions.JwtService,
	}
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/workouts", s.GetWorkouts)
			r.Post("/workouts", s.LogWorkout)
			r.Delete("/workouts/{id}", s.DeleteWorkout)
			r.Get("/exercises", s.ListExercises)
			r.Post("/exercises", s.CreateExercise)
			r.Get("/exercises/{id}", s.GetExercise)
			r.Delete("/exercises/{id}", s.DeleteExercise)
		})
	})
}

func (s *Server) Run(address string) error {
	s.registerRoutes()
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	s.registerRoutes()
	return s.mx
}
