package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ndudarev/go_fitness_backend/internal/app/auth"
	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

func (s *Server) MountWorkouts() {
	loginRequired := LoginRequired(s.authService.Authorizer)

	s.handler.POST("/workouts/:workout_id", s.RecordWorkout, loginRequired)
	s.handler.GET("/workouts/:workout_id", s.GetWorkout, loginRequired)
	s.handler.GET("/workouts/list/:athlete_id", s.ListWorkouts, loginRequired)
}

type recordWorkoutReq struct {
	WorkoutID string    `param:"workout_id" validate:"required,uuid"`
	Activity  string    `json:"activity" validate:"required,oneof=SWM RUN WLK"`
	Values    []float64 `json:"values" validate:"required,min=3,max=5"`
}

type workoutResp struct {
	WorkoutID string    `json:"workout_id"`
	AthleteID string    `json:"athlete_id"`
	Activity  string    `json:"activity"`
	Values    []float64 `json:"values"`
	CreatedAt time.Time `json:"created_at"`

	Type      string  `json:"type"`
	Duration  float64 `json:"duration_h"`
	Distance  float64 `json:"distance_km"`
	MeanSpeed float64 `json:"mean_speed_kmh"`
	Calories  float64 `json:"calories_kcal"`
	Message   string  `json:"message"`
}

func (s *Server) RecordWorkout(c echo.Context) error {
	var req recordWorkoutReq
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	token := c.Get(KeyCurrentAthlete).(*auth.AccessTokenData)

	report, err := s.workoutService.Record(ctx, s.workoutUoW(), req.WorkoutID, token.AthleteID, req.Activity, req.Values)
	if err != nil {
		switch {
		case errors.Is(err, workout.ErrUnknownActivity),
			errors.Is(err, workout.ErrInvalidRecord),
			errors.Is(err, workout.ErrWorkoutExists):
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, workoutResp{
		WorkoutID: req.WorkoutID,
		AthleteID: token.AthleteID,
		Activity:  req.Activity,
		Values:    req.Values,
		CreatedAt: time.Now().UTC(),
		Type:      report.Activity,
		Duration:  report.Duration,
		Distance:  report.Distance,
		MeanSpeed: report.MeanSpeed,
		Calories:  report.Calories,
		Message:   report.Message(),
	})
}

type getWorkoutReq struct {
	WorkoutID string `param:"workout_id" validate:"required,uuid"`
}

func (s *Server) GetWorkout(c echo.Context) error {
	var req getWorkoutReq
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()

	w, err := s.workoutService.GetByID(ctx, s.workoutUoW(), req.WorkoutID)
	if err != nil {
		if errors.Is(err, workout.ErrWorkoutNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	resp, err := workoutToResp(w)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, resp)
}

type listWorkoutsReq struct {
	AthleteID string `param:"athlete_id" validate:"required,uuid"`
}

type listWorkoutsResp struct {
	Workouts []workoutResp `json:"workouts"`
}

func (s *Server) ListWorkouts(c echo.Context) error {
	var req listWorkoutsReq
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()

	lst, err := s.workoutService.ListByAthlete(ctx, s.workoutUoW(), req.AthleteID)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	workouts := make([]workoutResp, 0, len(lst))
	for _, w := range lst {
		resp, err := workoutToResp(w)
		if err != nil {
			return JsonError(c, http.StatusInternalServerError, err)
		}
		workouts = append(workouts, resp)
	}

	return c.JSON(http.StatusOK, listWorkoutsResp{Workouts: workouts})
}

func workoutToResp(w *workout.Workout) (workoutResp, error) {
	report, err := w.Summary()
	if err != nil {
		return workoutResp{}, err
	}

	return workoutResp{
		WorkoutID: w.WorkoutID,
		AthleteID: w.AthleteID,
		Activity:  w.Activity,
		Values:    w.Values,
		CreatedAt: w.CreatedAt,
		Type:      report.Activity,
		Duration:  report.Duration,
		Distance:  report.Distance,
		MeanSpeed: report.MeanSpeed,
		Calories:  report.Calories,
		Message:   report.Message(),
	}, nil
}
