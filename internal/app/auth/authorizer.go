package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
)

var ErrAccessTokenInvalid = errors.New("invalid access token")

type Authorizer struct {
	Cost           int
	Secret         string
	AccessTokenTTL time.Duration
	SessionTTL     time.Duration
}

func (a *Authorizer) Hash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.Cost)
	if err != nil {
		panic(err)
	}
	return hex.EncodeToString(hash)
}

func (a *Authorizer) Authorize(ath *athlete.Athlete, password string, dev athlete.Device) (*athlete.Session, error) {
	hashBytes, err := hex.DecodeString(ath.PasswordHash)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(hashBytes, []byte(password)); err != nil {
		return nil, athlete.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	return &athlete.Session{
		ID:         a.generateIdentifier(),
		Secret:     a.generateIdentifier(),
		CreatedAt:  now,
		ValidUntil: now.Add(a.SessionTTL),
		Device:     dev,
	}, nil
}

func (a *Authorizer) generateIdentifier() string {
	var bytes [16]byte
	if n, err := rand.Read(bytes[:]); n != len(bytes) || err != nil {
		panic("failed to generate identifier")
	}
	return hex.EncodeToString(bytes[:])
}

func (a *Authorizer) GenerateAccessToken(ath *athlete.Athlete, s *athlete.Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": s.ID,
		"sub": ath.AthleteID,
		"exp": now.Add(a.AccessTokenTTL).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString([]byte(a.Secret))
}

type AccessTokenData struct {
	SessionID string
	AthleteID string
}

func (a *Authorizer) ValidateAccessToken(accessToken string) (*AccessTokenData, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.Secret), nil
	})
	if err != nil {
		return nil, ErrAccessTokenInvalid
	}

	sessionID, okJti := claims["jti"].(string)
	athleteID, okSub := claims["sub"].(string)
	if !okJti || !okSub {
		return nil, ErrAccessTokenInvalid
	}

	return &AccessTokenData{
		SessionID: sessionID,
		AthleteID: athleteID,
	}, nil
}
