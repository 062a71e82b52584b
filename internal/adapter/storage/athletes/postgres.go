package athletestorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage/pgutil"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
)

type PostgresStorage struct {
	db     storage.DBContext
	logger *slog.Logger
	seenMu sync.Mutex
	seen   map[string]*athlete.Athlete
}

func NewPostgresStorage(db storage.DBContext, logger *slog.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:     db,
		logger: logger,
		seen:   make(map[string]*athlete.Athlete),
	}
}

func (s *PostgresStorage) Add(ctx context.Context, a *athlete.Athlete) error {
	q := sqlf.InsertInto("athletes").
		Set("athlete_id", a.AthleteID).
		Set("email", a.Email).
		Set("password_hash", a.PasswordHash).
		Set("first_name", a.FirstName).
		Set("last_name", a.LastName).
		Set("weight_kg", a.WeightKg).
		Set("height_cm", a.HeightCm).
		Set("created_at", a.CreatedAt).
		Set("updated_at", a.UpdatedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.IsIntegrityViolation(err) {
			return errors.Join(fmt.Errorf("athlete exists: %w", err), athlete.ErrAthleteExists)
		}
		return storage.InternalError(err)
	}

	for _, sess := range a.Sessions {
		if err := s.addSession(ctx, a.AthleteID, sess); err != nil {
			return err
		}
	}

	s.markSeen(a)
	return nil
}

func (s *PostgresStorage) addSession(ctx context.Context, athleteID string, sess *athlete.Session) error {
	addSession := sqlf.InsertInto("sessions").
		Set("session_id", sess.ID).
		Set("secret", sess.Secret).
		Set("created_at", sess.CreatedAt).
		Set("valid_until", sess.ValidUntil).
		Set("logout_at", sess.LogoutAt).
		Set("athlete_id", athleteID)

	addDevice := sqlf.InsertInto("devices").
		Set("session_id", sess.ID).
		Set("os", sess.Device.OS).
		Set("device_model", sess.Device.Model).
		Set("ip_address", sess.Device.IPAddress).
		Set("browser", sess.Device.Browser)

	if _, err := addSession.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.IsIntegrityViolation(err) {
			return athlete.ErrSessionExists
		}
		return storage.InternalError(err)
	}

	if _, err := addDevice.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.IsIntegrityViolation(err) {
			return athlete.ErrSessionExists
		}
		return storage.InternalError(err)
	}

	return nil
}

type athleteSessionRow struct {
	AthleteID    string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	WeightKg     float64
	HeightCm     float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	SessionID        *string
	Secret           *string
	SessionCreatedAt *time.Time
	ValidUntil       *time.Time
	LogoutAt         *time.Time
	OS               *string
	Browser          *string
	Model            *string
	IPAddress        *string
}

func (s *PostgresStorage) get(
	ctx context.Context,
	whereClause string,
	whereArgs ...any,
) ([]*athlete.Athlete, error) {
	var tmp athleteSessionRow

	q := sqlf.From("athletes a").
		LeftJoin("sessions s", "a.athlete_id = s.athlete_id").
		LeftJoin("devices d", "d.session_id = s.session_id").
		Where(whereClause, whereArgs...).
		Select("a.athlete_id").To(&tmp.AthleteID).
		Select("a.email").To(&tmp.Email).
		Select("a.password_hash").To(&tmp.PasswordHash).
		Select("a.first_name").To(&tmp.FirstName).
		Select("a.last_name").To(&tmp.LastName).
		Select("a.weight_kg").To(&tmp.WeightKg).
		Select("a.height_cm").To(&tmp.HeightCm).
		Select("a.created_at").To(&tmp.CreatedAt).
		Select("a.updated_at").To(&tmp.UpdatedAt).
		Select("s.session_id").To(&tmp.SessionID).
		Select("s.secret").To(&tmp.Secret).
		Select("s.created_at").To(&tmp.SessionCreatedAt).
		Select("s.valid_until").To(&tmp.ValidUntil).
		Select("s.logout_at").To(&tmp.LogoutAt).
		Select("d.os").To(&tmp.OS).
		Select("d.browser").To(&tmp.Browser).
		Select("d.device_model").To(&tmp.Model).
		Select("d.ip_address").To(&tmp.IPAddress)

	var fetched []athleteSessionRow

	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		fetched = append(fetched, tmp)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storage.InternalError(err)
	}

	return rowsToDomain(fetched), nil
}

func rowsToDomain(rows []athleteSessionRow) []*athlete.Athlete {
	byID := make(map[string]*athlete.Athlete)
	var order []string

	for _, r := range rows {
		a, ok := byID[r.AthleteID]
		if !ok {
			a = &athlete.Athlete{
				AthleteID:    r.AthleteID,
				Email:        r.Email,
				PasswordHash: r.PasswordHash,
				FirstName:    r.FirstName,
				LastName:     r.LastName,
				WeightKg:     r.WeightKg,
				HeightCm:     r.HeightCm,
				CreatedAt:    r.CreatedAt,
				UpdatedAt:    r.UpdatedAt,
			}
			byID[r.AthleteID] = a
			order = append(order, r.AthleteID)
		}

		if r.SessionID == nil {
			continue
		}

		sess := &athlete.Session{
			ID:       *r.SessionID,
			LogoutAt: r.LogoutAt,
		}
		if r.Secret != nil {
			sess.Secret = *r.Secret
		}
		if r.SessionCreatedAt != nil {
			sess.CreatedAt = *r.SessionCreatedAt
		}
		if r.ValidUntil != nil {
			sess.ValidUntil = *r.ValidUntil
		}
		if r.OS != nil {
			sess.Device.OS = *r.OS
		}
		if r.Browser != nil {
			sess.Device.Browser = *r.Browser
		}
		if r.Model != nil {
			sess.Device.Model = *r.Model
		}
		if r.IPAddress != nil {
			sess.Device.IPAddress = *r.IPAddress
		}
		a.Sessions = append(a.Sessions, sess)
	}

	result := make([]*athlete.Athlete, 0, len(order))
	for _, id := range order {
		result = append(result, byID[id])
	}
	return result
}

func (s *PostgresStorage) GetByEmail(ctx context.Context, email string) (*athlete.Athlete, error) {
	return s.one(ctx, "a.email = ?", email)
}

func (s *PostgresStorage) GetByID(ctx context.Context, athleteID string) (*athlete.Athlete, error) {
	return s.one(ctx, "a.athlete_id = ?", athleteID)
}

func (s *PostgresStorage) GetBySessionID(ctx context.Context, sessionID string) (*athlete.Athlete, error) {
	return s.one(ctx, "s.session_id = ?", sessionID)
}

func (s *PostgresStorage) one(ctx context.Context, whereClause string, whereArgs ...any) (*athlete.Athlete, error) {
	athletes, err := s.get(ctx, whereClause, whereArgs...)
	if err != nil {
		return nil, err
	}
	if len(athletes) == 0 {
		return nil, athlete.ErrAthleteNotFound
	}

	s.markSeen(athletes[0])
	return athletes[0], nil
}

// Persist writes back the changes of an already fetched aggregate:
// changed scalar columns via a diff-driven UPDATE, new sessions via
// INSERT, changed sessions via UPDATE.
func (s *PostgresStorage) Persist(ctx context.Context, a *athlete.Athlete) error {
	dbState, err := s.GetByID(ctx, a.AthleteID)
	if err != nil {
		return err
	}

	if log, _ := diff.Diff(dbState, a); len(log) != 0 {
		q := sqlf.Update("athletes").Where("athlete_id = ?", a.AthleteID)
		q = pgutil.MakeUpdateQuery(q, log)

		res, err := q.ExecAndClose(ctx, s.db)
		if err := pgutil.AssertUpdated(res, err, athlete.ErrAthleteNotFound); err != nil {
			return fmt.Errorf("can't persist athlete: %w", err)
		}
	}

	dbSessions := make(map[string]*athlete.Session)
	for _, sess := range dbState.Sessions {
		dbSessions[sess.ID] = sess
	}

	for _, sess := range a.Sessions {
		stored, ok := dbSessions[sess.ID]
		if !ok {
			if err := s.addSession(ctx, a.AthleteID, sess); err != nil {
				return err
			}
			continue
		}
		if err := s.persistSession(ctx, stored, sess); err != nil {
			return err
		}
	}

	s.markSeen(a)
	return nil
}

func (s *PostgresStorage) persistSession(ctx context.Context, stored, actual *athlete.Session) error {
	log, _ := diff.Diff(stored, actual)
	if len(log) == 0 {
		return nil
	}

	q := sqlf.Update("sessions").Where("session_id = ?", actual.ID)
	q = pgutil.MakeUpdateQuery(q, log)

	res, err := q.ExecAndClose(ctx, s.db)
	if err := pgutil.AssertUpdated(res, err, athlete.ErrUnauthorized); err != nil {
		return fmt.Errorf("can't persist session: %w", err)
	}
	return nil
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()

	var events []domain.Event
	for _, a := range s.seen {
		events = append(events, a.PopEvents()...)
	}
	s.seen = make(map[string]*athlete.Athlete)
	return events
}

func (s *PostgresStorage) Close() error {
	return nil
}

func (s *PostgresStorage) markSeen(a *athlete.Athlete) {
	s.seenMu.Lock()
	s.seen[a.AthleteID] = a
	s.seenMu.Unlock()
}
