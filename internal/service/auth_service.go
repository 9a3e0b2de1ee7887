package service

import (
	"context"
	"errors"
	"strings"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/remote"
	"fittracker/fitness-app/internal/session"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotAvailable marks a feature the remote API does not offer.
	ErrNotAvailable = errors.New("feature not available")
)

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterInput is the registration form. Empty UF and Level get defaults.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,loosemail"`
	UF       string `validate:"uf"`
	Password string `validate:"required,min=6"`
	Level    string `validate:"required"`
}

// ProfileInput is the profile form. An empty password keeps the one used at login.
type ProfileInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,loosemail"`
	UF       string `validate:"uf"`
	Password string `validate:"required,min=6"`
	Level    string `validate:"required"`
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (domain.Identity, error)
	Logout()
	Register(ctx context.Context, in RegisterInput) error
	Profile() (domain.Profile, error)
	UpdateProfile(ctx context.Context, in ProfileInput) (domain.Profile, error)
	ForgotPassword(ctx context.Context, email string) error
}

type authService struct {
	remote  authRemote
	session *session.Session
}

func NewAuthService(remote authRemote, sess *session.Session) AuthService {
	return &authService{remote: remote, session: sess}
}

// Login exchanges credentials for a token and starts the session. A token
// without readable claims still signs the user in, with an empty identity.
func (s *authService) Login(ctx context.Context, in LoginInput) (domain.Identity, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := check(in); err != nil {
		return domain.Identity{}, err
	}

	token, err := s.remote.Login(ctx, in.Email, in.Password)
	if err != nil {
		return domain.Identity{}, err
	}

	if err := s.session.Begin(token, in.Password); err != nil {
		var de *session.DecodeError
		if !errors.As(err, &de) {
			return domain.Identity{}, err
		}
	}
	identity, _ := s.session.Identity()
	log.Infof("auth: user %d signed in", identity.UserID)
	return identity, nil
}

func (s *authService) Logout() {
	s.session.End()
	log.Info("auth: signed out")
}

func (s *authService) Register(ctx context.Context, in RegisterInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.UF == "" {
		in.UF = domain.DefaultUF
	}
	if in.Level == "" {
		in.Level = domain.DefaultLevel
	}
	if err := check(in); err != nil {
		return err
	}

	return s.remote.Register(ctx, remote.RegisterRequest{
		Name:     in.Name,
		Email:    in.Email,
		UF:       in.UF,
		Password: in.Password,
		Level:    in.Level,
	})
}

// Profile returns the profile prefilled from the session claims.
func (s *authService) Profile() (domain.Profile, error) {
	if !s.session.Authenticated() {
		return domain.Profile{}, session.ErrNoSession
	}
	identity, ok := s.session.Identity()
	if !ok {
		return domain.Profile{}, ErrNoIdentity
	}
	return profileOf(identity), nil
}

// UpdateProfile sends the edited profile. The session itself is left as
// it is; the new claims show up at the next login.
func (s *authService) UpdateProfile(ctx context.Context, in ProfileInput) (domain.Profile, error) {
	if !s.session.Authenticated() {
		return domain.Profile{}, session.ErrNoSession
	}
	identity, ok := s.session.Identity()
	if !ok {
		return domain.Profile{}, ErrNoIdentity
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Password == "" {
		in.Password = s.session.Password()
	}
	if in.UF == "" {
		in.UF = identity.UF
	}
	if in.Level == "" {
		in.Level = string(identity.Level)
	}
	if err := check(in); err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		ID:       int(identity.UserID),
		Name:     in.Name,
		Email:    in.Email,
		UF:       in.UF,
		Level:    in.Level,
		Password: in.Password,
	}
	if err := s.remote.UpdateUser(ctx, s.session.Token(), profile); err != nil {
		return domain.Profile{}, err
	}
	log.Infof("auth: profile %d updated", profile.ID)

	profile.Password = ""
	return profile, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	return ErrNotAvailable
}

func profileOf(identity domain.Identity) domain.Profile {
	return domain.Profile{
		ID:    int(identity.UserID),
		Name:  identity.Name,
		Email: identity.Email,
		UF:    identity.UF,
		Level: string(identity.Level),
	}
}
