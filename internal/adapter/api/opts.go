package api

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	authservice "github.com/ndudarev/go_fitness_backend/internal/app/auth"
	"github.com/ndudarev/go_fitness_backend/internal/app/unitofwork"
	workoutservice "github.com/ndudarev/go_fitness_backend/internal/app/workoutapp"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func Database(db storage.Database) Option {
	return func(s *Server) {
		s.db = db
	}
}

func AuthService(service *authservice.Service) Option {
	return func(s *Server) {
		s.authService = service
	}
}

func WorkoutService(service *workoutservice.Service) Option {
	return func(s *Server) {
		s.workoutService = service
	}
}

func MessageBus(bus unitofwork.MessageBus) Option {
	return func(s *Server) {
		s.msgBus = bus
	}
}
