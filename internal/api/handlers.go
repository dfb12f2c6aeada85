package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/internal/service"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LogSetRequest struct {
	SetOrder  int     `json:"set_order"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed *bool   `json:"completed"`
}

type LogWorkoutExerciseRequest struct {
	ExerciseID string          `json:"exercise_id"`
	Order      int             `json:"order"`
	Notes      string          `json:"notes"`
	Sets       []LogSetRequest `json:"sets"`
}

type LogWorkoutRequest struct {
	WorkoutDate time.Time                   `json:"workout_date"`
	Name        string                      `json:"name"`
	Notes       string                      `json:"notes"`
	Exercises   []LogWorkoutExerciseRequest `json:"exercises"`
}

type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	MuscleGroup string `json:"muscle_group"`
}

type GetWorkoutsResponse struct {
	UserID   string            `json:"uid"`
	Date     string            `json:"date,omitempty"`
	Workouts []*entity.Workout `json:"workouts"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var workouts []*entity.Workout
	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		// The calendar day is taken in the server's local zone, not UTC,
		// so the window matches the day the user actually means
		date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			logger.Error("get workouts error: invalid date param")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		workouts, err = s.workoutService.GetUserWorkoutsByDate(ctx, uid.String(), date)
		if err != nil {
			logger.Error("getting workouts by date error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts", nil)
			return
		}
	} else {
		workouts, err = s.workoutService.GetUserWorkouts(ctx, uid.String())
		if err != nil {
			logger.Error("getting workouts error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		UserID:   uid.String(),
		Date:     dateParam,
		Workouts: workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := service.CreateWorkoutRequest{
		WorkoutDate: req.WorkoutDate,
		Name:        req.Name,
		Notes:       req.Notes,
		Exercises:   make([]service.CreateWorkoutExerciseRequest, 0, len(req.Exercises)),
	}
	for _, we := range req.Exercises {
		exerciseID, err := uuid.Parse(we.ExerciseID)
		if err != nil {
			logger.Error("log workout error: invalid exercise id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id", nil)
			return
		}
		weReq := service.CreateWorkoutExerciseRequest{
			ExerciseID: exerciseID,
			Order:      we.Order,
			Notes:      we.Notes,
			Sets:       make([]service.CreateSetRequest, 0, len(we.Sets)),
		}
		for _, set := range we.Sets {
			completed := true
			if set.Completed != nil {
				completed = *set.Completed
			}
			weReq.Sets = append(weReq.Sets, service.CreateSetRequest{
				SetOrder:  set.SetOrder,
				Reps:      set.Reps,
				Weight:    set.Weight,
				Completed: completed,
			})
		}
		serviceReq.Exercises = append(serviceReq.Exercises, weReq)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.LogWorkout(ctx, uid.String(), &serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("log workout error: unknown exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "referenced exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrDuplicateOrder):
			logger.Error("log workout error: duplicate exercise order")
			httputil.WriteErrorResponse(w, http.StatusConflict, "duplicate exercise order within workout", nil)
		case errors.Is(err, errorvalues.ErrDuplicateSetOrder):
			logger.Error("log workout error: duplicate set order")
			httputil.WriteErrorResponse(w, http.StatusConflict, "duplicate set order within exercise", nil)
		default:
			logger.Error("log workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"workout_id": workout.ID.String()})
	logger.Info("workout logged")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutService.DeleteWorkout(ctx, id, uid.String())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutNotFound):
			logger.Error("workout deletion error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("workout deletion error: workout has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("workout deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting workout", nil)
		}
		return
	}
	logger.Info("workout deleted")
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercises, err := s.exerciseService.ListExercises(ctx)
	if err != nil {
		logger.Error("listing exercises error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing exercises", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"exercises": exercises})
	logger.Info("exercises provided")
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateExerciseRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.exerciseService.CreateExercise(ctx, &service.CreateExerciseRequest{
		Name:        req.Name,
		Description: req.Description,
		MuscleGroup: req.MuscleGroup,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseExists) {
			logger.Error("create exercise error: attempt to create existed exercise")
			httputil.WriteErrorResponse(w, http.StatusConflict, "exercise already exists", nil)
			return
		}
		logger.Error("create exercise error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating exercise", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"exercise_id": exercise.ID.String()})
	logger.Info("exercise created")
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.exerciseService.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			logger.Error("get exercise error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
			return
		}
		logger.Error("get exercise error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting exercise", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
	logger.Info("exercise provided")
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("exercise deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.exerciseService.DeleteExercise(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("exercise deletion error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrExerciseInUse):
			logger.Error("exercise deletion error: exercise still referenced")
			httputil.WriteErrorResponse(w, http.StatusConflict, "exercise is referenced by workouts", nil)
		default:
			logger.Error("exercise deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting exercise", nil)
		}
		return
	}
	logger.Info("exercise deleted")
}
