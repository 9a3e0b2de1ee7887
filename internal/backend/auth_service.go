package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrForbidden            = errors.New("operation not allowed for this user")
	ErrMissingFields        = errors.New("nome, email and password are required")
)

// AccountInput is the body of registration and profile updates.
type AccountInput struct {
	Name     string
	Email    string
	UF       string
	Level    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, in AccountInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	UpdateAccount(ctx context.Context, caller domain.Identity, id int, in AccountInput) (*domain.Account, error)
	VerifyToken(token string) (domain.Identity, error)
}

type authService struct {
	accounts      repository.AccountRepository
	jwtSecret     string
	jwtExpiration time.Duration
	now           func() time.Time
}

func NewAuthService(accounts repository.AccountRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		accounts:      accounts,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		now:           time.Now,
	}
}

func (s *authService) Register(ctx context.Context, in AccountInput) (*domain.Account, error) {
	in = normalize(in)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.accounts.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		UF:           in.UF,
		Level:        in.Level,
		PasswordHash: string(hashedPassword),
	}
	if _, err := s.accounts.Create(ctx, account); err != nil {
		// a concurrent registration can still hit the unique index
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	log.Infof("backend: registered account %d", account.ID)

	account.PasswordHash = ""
	return account, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrAuthenticationFailed
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAuthenticationFailed
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthenticationFailed
	}

	token, err := s.generateJWT(account)
	if err != nil {
		log.Errorf("backend: sign token for %d: %s", account.ID, err)
		return "", ErrTokenGeneration
	}
	return token, nil
}

// UpdateAccount lets a user edit their own account. The password is
// always sent by the client and re-hashed.
func (s *authService) UpdateAccount(ctx context.Context, caller domain.Identity, id int, in AccountInput) (*domain.Account, error) {
	if int(caller.UserID) != id {
		return nil, ErrForbidden
	}
	in = normalize(in)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}
	account.Name = in.Name
	account.Email = in.Email
	account.UF = in.UF
	account.Level = in.Level
	account.PasswordHash = string(hashedPassword)

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	account.PasswordHash = ""
	return account, nil
}

// --- JWT Helper ---

// jwtClaims carries the identity the client reads from the token.
type jwtClaims struct {
	domain.Identity
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(account *domain.Account) (string, error) {
	now := s.now()
	claims := &jwtClaims{
		Identity: account.Identity(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(account.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fittracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken checks the signature and expiry of a token issued by Login.
func (s *authService) VerifyToken(tokenString string) (domain.Identity, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return domain.Identity{}, ErrInvalidToken
	}
	return claims.Identity, nil
}

func normalize(in AccountInput) AccountInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.UF == "" {
		in.UF = domain.DefaultUF
	}
	if in.Level == "" {
		in.Level = domain.DefaultLevel
	}
	return in
}
