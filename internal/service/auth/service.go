package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	adminUserRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/adminuser"
	sessionStore "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/session"
)

// dummyHash сравнивается с паролем, когда пользователь не найден,
// чтобы время ответа не выдавало существование email
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("barberbooking-dummy-password"), bcrypt.MinCost)

// Service аутентификация администраторов: вход, проверка сессии, выход
type Service struct {
	userRepo     UserRepository
	sessions     SessionStore
	sessionTTL   time.Duration
	bcryptCost   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис аутентификации
func NewService(userRepo UserRepository, sessions SessionStore, sessionTTL time.Duration, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:     userRepo,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		bcryptCost:   bcryptCost,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignIn проверяет email и пароль и открывает сессию
func (s *Service) SignIn(ctx context.Context, email, password string) (*SessionResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if err := validateEmail(email); err != nil {
		s.logger.Warn("SignIn: invalid email format %q", email)
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminUserRepo.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.logger.Warn("SignIn: unknown email %q", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for email %q: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("SignIn: wrong password for user id=%s", user.ID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: bad password hash for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - compare hash: %v", ErrInternal, err)
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.timeProvider.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("SignIn: failed to save session for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - save session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: user id=%s signed in", user.ID)
	return &SessionResponse{Token: session.Token, Email: session.Email, ExpiresAt: session.ExpiresAt}, nil
}

// CurrentUser возвращает сессию по токену; используется для допуска к панели администратора
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		s.logger.Error("CurrentUser: session store error: %v", err)
		return nil, fmt.Errorf("%w: CurrentUser - session store: %v", ErrInternal, err)
	}

	if !session.ExpiresAt.IsZero() && !s.timeProvider.Now().Before(session.ExpiresAt) {
		return nil, ErrUnauthenticated
	}

	return session, nil
}

// SignOut закрывает сессию
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("SignOut: session store error: %v", err)
		return fmt.Errorf("%w: SignOut - session store: %v", ErrInternal, err)
	}

	return nil
}

// CreateAdmin создает администратора с bcrypt-хешем пароля
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*UserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAdmin - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.AdminUser{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, adminUserRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: admin id=%s created", user.ID)
	return &UserResponse{ID: user.ID, Email: user.Email}, nil
}

// validateEmail принимает только голый адрес вида user@host
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return ErrInvalidEmail
	}
	return nil
}
