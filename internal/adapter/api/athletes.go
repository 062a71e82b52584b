package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ndudarev/go_fitness_backend/internal/app/auth"
	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
)

func (s *Server) MountAthletes() {
	loginRequired := LoginRequired(s.authService.Authorizer)

	athleteRoutes := s.handler.Group("/athletes", loginRequired)

	athleteRoutes.GET("/me", s.GetProfile)
	athleteRoutes.PATCH("/me", s.UpdateProfile)
}

type athleteResp struct {
	AthleteID string    `json:"athlete_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	WeightKg  float64   `json:"weight_kg"`
	HeightCm  float64   `json:"height_cm"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func athleteToResp(a *athlete.Athlete) athleteResp {
	return athleteResp{
		AthleteID: a.AthleteID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		WeightKg:  a.WeightKg,
		HeightCm:  a.HeightCm,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *Server) GetProfile(c echo.Context) error {
	token := c.Get(KeyCurrentAthlete).(*auth.AccessTokenData)

	a, err := s.authService.GetAthlete(c.Request().Context(), s.authUoW(), token.AthleteID)
	if err != nil {
		if errors.Is(err, athlete.ErrAthleteNotFound) {
			return JsonError(c, http.StatusNotFound, "athlete not found")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, athleteToResp(a))
}

type updateProfileReq struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	WeightKg  float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm  float64 `json:"height_cm" validate:"required,gt=0"`
}

func (s *Server) UpdateProfile(c echo.Context) error {
	token := c.Get(KeyCurrentAthlete).(*auth.AccessTokenData)

	var b updateProfileReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	a, err := s.authService.UpdateProfile(
		c.Request().Context(), s.authUoW(),
		token.AthleteID, b.FirstName, b.LastName, b.WeightKg, b.HeightCm,
	)
	if err != nil {
		if errors.Is(err, athlete.ErrAthleteNotFound) {
			return JsonError(c, http.StatusNotFound, "athlete not found")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, athleteToResp(a))
}
