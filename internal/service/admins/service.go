package admins

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/urinakcleaning/booking-service/internal/domain"
	adminRepo "github.com/urinakcleaning/booking-service/internal/infra/storage/admins"
	"github.com/urinakcleaning/booking-service/internal/service/admins/models"
)

// Service сервис учетных записей администраторов
type Service struct {
	adminRepo  AdminRepository
	tokens     TokenIssuer
	bcryptCost int
	now        func() time.Time
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(adminRepo AdminRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		adminRepo:  adminRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		logger:     logger,
	}
}

// Login проверяет пароль и выпускает токен сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown username %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for admin id=%d", admin.ID)
		return nil, ErrInvalidCredentials
	}

	loginAt := s.now().UTC()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, loginAt); err != nil {
		// Вход не блокируется, если не удалось записать время
		s.logger.Warn("Login: failed to update last login for admin id=%d: %v", admin.ID, err)
	} else {
		admin.LastLogin = &loginAt
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID, admin.Role)
	if err != nil {
		s.logger.Error("Login: failed to issue token for admin id=%d: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%d logged in", admin.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     *models.FromDomainAdmin(admin),
	}, nil
}

// Create создает администратора с bcrypt-хешем пароля
func (s *Service) Create(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if err := validateCredentials(username, req.Password, email); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	created, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         domain.DefaultAdminRole,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrDuplicateAdmin) {
			s.logger.Warn("Create: admin %q or %q already exists", username, email)
			return nil, ErrAdminAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created admin id=%d (%s)", created.ID, created.Username)
	return models.FromDomainAdmin(created), nil
}

// CanBootstrap сообщает, что ни одного администратора еще нет
func (s *Service) CanBootstrap(ctx context.Context) (bool, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		s.logger.Error("CanBootstrap: repository error: %v", err)
		return false, fmt.Errorf("%w: CanBootstrap - repository error: %v", ErrInternal, err)
	}
	return count == 0, nil
}

func validateCredentials(username, password, email string) error {
	if len(username) < models.MinUsernameLength || len(username) > models.MaxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, models.MinUsernameLength, models.MaxUsernameLength)
	}
	if len(password) < models.MinPasswordLength || len(password) > models.MaxPasswordLength {
		return fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, models.MinPasswordLength, models.MaxPasswordLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}
	return nil
}
