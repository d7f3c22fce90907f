package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smarttrack-backend/internal/domains/user/model"
	"smarttrack-backend/internal/domains/user/repository"
	"smarttrack-backend/pkg/cache"
	"smarttrack-backend/pkg/jwt"
	"smarttrack-backend/pkg/logger"
)

const (
	bcryptCost = 12

	// Failed-login lockout: maxLoginAttempts failures within the attempt
	// window lock the account for lockoutDuration.
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute
	lockoutDuration  = 15 * time.Minute
)

// Service handles registration and authentication.
type Service interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.AuthResponse, error)
}

type userService struct {
	repo  repository.Repository
	jwt   *jwt.Manager
	cache cache.Cache
}

// NewService creates a new user service
func NewService(repo repository.Repository, jwtManager *jwt.Manager, cache cache.Cache) Service {
	return &userService{
		repo:  repo,
		jwt:   jwtManager,
		cache: cache,
	}
}

// Register implements Service.Register
func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Password != req.ConfirmPassword {
		return nil, model.ErrPasswordsDoNotMatch
	}

	if exists, err := s.repo.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, model.ErrUsernameAlreadyExists
	}

	if exists, err := s.repo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, model.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         model.Role(req.Role),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
	})

	return &model.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

// Login implements Service.Login. Failed attempts are counted per username
// in the cache; hitting the limit locks the account for lockoutDuration.
// A lookup miss still burns an attempt so usernames cannot be probed freely.
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lockKey := "login_lock:" + req.Username
	if locked, err := s.cache.Exists(ctx, lockKey); err == nil && locked {
		return nil, model.ErrAccountLocked
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Only a genuine miss burns an attempt; a repository outage must
		// not lock a legitimate user out during a database blip.
		if errors.Is(err, model.ErrUserNotFound) {
			s.recordFailedAttempt(ctx, req.Username)
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, req.Username)
		return nil, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, model.ErrAccountInactive
	}

	// Successful login clears the failure counter.
	if err := s.cache.Delete(ctx, "login_attempts:"+req.Username); err != nil {
		logger.Warn("Failed to reset login attempts", map[string]interface{}{
			"username": req.Username,
		})
	}

	return s.issueTokens(user)
}

// Refresh implements Service.Refresh: validates the refresh token and issues
// a fresh pair against the user's current profile.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*model.AuthResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, model.ErrAccountInactive
	}

	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
	}, nil
}

// recordFailedAttempt bumps the failure counter and arms the lock when the
// limit is reached. Cache outages degrade to unthrottled logins rather than
// blocking everyone out.
func (s *userService) recordFailedAttempt(ctx context.Context, username string) {
	attemptKey := "login_attempts:" + username

	count, err := s.cache.Increment(ctx, attemptKey)
	if err != nil {
		logger.Warn("Failed to record login attempt", map[string]interface{}{
			"username": username,
		})
		return
	}

	if count == 1 {
		_ = s.cache.Expire(ctx, attemptKey, attemptWindow)
	}

	if count >= maxLoginAttempts {
		_ = s.cache.Set(ctx, "login_lock:"+username, true, lockoutDuration)
		logger.Warn("Account locked after repeated login failures", map[string]interface{}{
			"username": username,
			"attempts": count,
		})
	}
}
