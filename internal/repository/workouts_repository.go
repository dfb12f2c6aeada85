package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/MisterFoxxSA/liftingdiarycourse/internal/error_values"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/cleanup"
	"github.com/MisterFoxxSA/liftingdiarycourse/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

// DayBounds returns the query window for the calendar day of date, computed
// in date's own location. The upper bound is 23:59:59.999 of the same day and
// is compared with a strict less-than, so a workout stamped exactly at that
// millisecond falls outside the day.
func DayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting workout tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var workoutID uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO workouts (user_id, workout_date, name, notes) VALUES ($1, $2, $3, $4) RETURNING id;`,
		workout.UserID,
		workout.WorkoutDate,
		workout.Name,
		workout.Notes,
	)
	if err = row.Scan(&workoutID); err != nil {
		return uuid.UUID{}, errors.New("creating workout db error: " + err.Error())
	}
	for _, we := range workout.Exercises {
		var weID uuid.UUID
		row = tx.QueryRow(ctx, `INSERT INTO workout_exercises (workout_id, exercise_id, "order", notes) VALUES ($1, $2, $3, $4) RETURNING id;`,
			workoutID,
			we.ExerciseID,
			we.Order,
			we.Notes,
		)
		if err = row.Scan(&weID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				// Unique violation
				case "23505":
					return uuid.UUID{}, errorvalues.ErrDuplicateOrder
				// FK violation
				case "23503":
					return uuid.UUID{}, errorvalues.ErrExerciseNotFound
				}
			}
			return uuid.UUID{}, errors.New("creating workout exercise db error: " + err.Error())
		}
		for _, set := range we.Sets {
			_, err = tx.Exec(ctx, `INSERT INTO sets (workout_exercise_id, set_order, reps, weight, completed) VALUES ($1, $2, $3, $4, $5);`,
				weID,
				set.SetOrder,
				set.Reps,
				set.Weight,
				set.Completed,
			)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return uuid.UUID{}, errorvalues.ErrDuplicateSetOrder
				}
				return uuid.UUID{}, errors.New("creating set db error: " + err.Error())
			}
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing workout tx error: " + err.Error())
	}
	return workoutID, nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	workout.ID = id
	row := wr.conn.QueryRow(ctx, `SELECT user_id, workout_date, COALESCE(name, ''), COALESCE(notes, ''), created_at FROM workouts WHERE id = $1;`, id)
	if err := row.Scan(&workout.UserID, &workout.WorkoutDate, &workout.Name, &workout.Notes, &workout.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout by id error: " + err.Error())
	}
	return &workout, nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Workout, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, workout_date, COALESCE(name, ''), COALESCE(notes, ''), created_at
		FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC;`, userID)
	if err != nil {
		return nil, errors.New("getting workouts by uid error: " + err.Error())
	}
	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	return wr.hydrate(ctx, workouts)
}

func (wr *WorkoutsRepository) GetByUserIDAndDate(ctx context.Context, userID string, date time.Time) ([]*entity.Workout, error) {
	startOfDay, endOfDay := DayBounds(date)
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, workout_date, COALESCE(name, ''), COALESCE(notes, ''), created_at
		FROM workouts WHERE user_id = $1 AND workout_date >= $2 AND workout_date < $3 ORDER BY workout_date DESC;`,
		userID,
		startOfDay,
		endOfDay,
	)
	if err != nil {
		return nil, errors.New("getting workouts by date error: " + err.Error())
	}
	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	return wr.hydrate(ctx, workouts)
}

func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func scanWorkouts(rows pgx.Rows) ([]*entity.Workout, error) {
	defer rows.Close()
	workouts := make([]*entity.Workout, 0)
	for rows.Next() {
		w := entity.Workout{Exercises: make([]*entity.WorkoutExercise, 0)}
		err := rows.Scan(&w.ID, &w.UserID, &w.WorkoutDate, &w.Name, &w.Notes, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning workouts: " + rows.Err().Error())
	}
	return workouts, nil
}

// hydrate attaches workout_exercises (with their catalog exercise) and sets
// to the already scanned workouts: one query per nesting level, ordered in
// SQL, assembled here. Relations stay explicit instead of ORM-style links.
func (wr *WorkoutsRepository) hydrate(ctx context.Context, workouts []*entity.Workout) ([]*entity.Workout, error) {
	if len(workouts) == 0 {
		return workouts, nil
	}
	workoutIDs := make([]uuid.UUID, 0, len(workouts))
	byWorkout := make(map[uuid.UUID]*entity.Workout, len(workouts))
	for _, w := range workouts {
		workoutIDs = append(workoutIDs, w.ID)
		byWorkout[w.ID] = w
	}
	rows, err := wr.conn.Query(ctx, `SELECT we.id, we.workout_id, we.exercise_id, we."order", COALESCE(we.notes, ''), we.created_at,
		e.name, COALESCE(e.description, ''), COALESCE(e.muscle_group, ''), e.created_at
		FROM workout_exercises we JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = ANY($1) ORDER BY we.workout_id, we."order";`, workoutIDs)
	if err != nil {
		return nil, errors.New("getting workout exercises error: " + err.Error())
	}
	weIDs := make([]uuid.UUID, 0)
	byWorkoutExercise := make(map[uuid.UUID]*entity.WorkoutExercise)
	for rows.Next() {
		we := entity.WorkoutExercise{
			Exercise: &entity.Exercise{},
			Sets:     make([]*entity.Set, 0),
		}
		err = rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Order, &we.Notes, &we.CreatedAt,
			&we.Exercise.Name, &we.Exercise.Description, &we.Exercise.MuscleGroup, &we.Exercise.CreatedAt)
		if err != nil {
			rows.Close()
			return nil, errors.New("unmarshalling workout exercise error: " + err.Error())
		}
		we.Exercise.ID = we.ExerciseID
		byWorkout[we.WorkoutID].Exercises = append(byWorkout[we.WorkoutID].Exercises, &we)
		weIDs = append(weIDs, we.ID)
		byWorkoutExercise[we.ID] = &we
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning workout exercises: " + rows.Err().Error())
	}
	rows.Close()
	if len(weIDs) == 0 {
		return workouts, nil
	}
	rows, err = wr.conn.Query(ctx, `SELECT id, workout_exercise_id, set_order, reps, weight, completed, created_at
		FROM sets WHERE workout_exercise_id = ANY($1) ORDER BY workout_exercise_id, set_order;`, weIDs)
	if err != nil {
		return nil, errors.New("getting sets error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.Set{}
		err = rows.Scan(&s.ID, &s.WorkoutExerciseID, &s.SetOrder, &s.Reps, &s.Weight, &s.Completed, &s.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling set error: " + err.Error())
		}
		we := byWorkoutExercise[s.WorkoutExerciseID]
		we.Sets = append(we.Sets, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning sets: " + rows.Err().Error())
	}
	return workouts, nil
}
