package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ndudarev/go_fitness_backend/internal/app/auth"
)

const KeyCurrentAthlete = "current_athlete"

func LoginRequired(authorizer *auth.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return JsonError(c, http.StatusUnprocessableEntity, "Invalid Authorization header")
			}

			token, err := authorizer.ValidateAccessToken(parts[1])
			if err != nil {
				return JsonError(c, http.StatusUnauthorized, err.Error())
			}

			c.Set(KeyCurrentAthlete, token)
			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}
