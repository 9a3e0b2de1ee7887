// Package session holds the credentials of the signed-in user.
//
// A Session is created once by the top-level controller and handed to
// every service that talks to the remote API. It is written only at
// login and logout and read everywhere else.
package session

import (
	"errors"
	"fmt"
	"sync"

	"fittracker/fitness-app/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

// ErrNoSession is returned when an operation needs a signed-in user.
var ErrNoSession = errors.New("no active session")

// DecodeError reports a session token whose claims could not be read.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode session token: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Session struct {
	mu       sync.RWMutex
	token    string
	password string
	identity *domain.Identity
}

func New() *Session {
	return &Session{}
}

// Begin replaces the whole session. A token whose claims cannot be
// decoded still starts the session, but without an identity; the
// DecodeError is logged and returned for the caller's information.
func (s *Session) Begin(token, password string) error {
	identity, err := DecodeIdentity(token)
	if err != nil {
		log.Warnf("session: %s; continuing without identity", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.password = password
	s.identity = identity
	return err
}

// End clears the session.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.password = ""
	s.identity = nil
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Password is the password used at login; the profile endpoint requires it.
func (s *Session) Password() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password
}

// Identity returns the decoded claims, if any.
func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

type identityClaims struct {
	domain.Identity
	jwt.RegisteredClaims
}

// DecodeIdentity reads the claims of a signed token without checking its
// signature. Verification belongs to the issuer.
func DecodeIdentity(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, &DecodeError{Err: errors.New("empty token")}
	}
	claims := &identityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if claims.UserID == 0 {
		return nil, &DecodeError{Err: errors.New("token carries no idUser claim")}
	}
	identity := claims.Identity
	return &identity, nil
}
