package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staffdesk/internal/auth"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// dummyHash is compared against when the username does not exist, so that
// both failure paths cost one bcrypt verification. Callers can still not
// tell "no such user" from "wrong password".
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("staffdesk-dummy-credential"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// AuthService handles credential verification and session tokens.
type AuthService struct {
	accountRepo repository.UserAccountRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(accountRepo repository.UserAccountRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Authenticate compares the raw password against the stored hash for the
// given username. An unknown username yields false, not an error.
func (s *AuthService) Authenticate(ctx context.Context, username, rawPassword string) (bool, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(rawPassword))
			return false, nil
		}
		return false, fmt.Errorf("find account: %w", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(rawPassword)) == nil, nil
}

// Login authenticates an account and returns access and refresh tokens.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (accessToken, refreshToken string, account *model.UserAccount, err error) {
	account, err = s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(rawPassword))
			return "", "", nil, ErrInvalidCredentials
		}
		return "", "", nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(rawPassword)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(account.ID, account.Username)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, account.ID.String(), account.Username, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, account, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedUserID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if storedUserID != claims.UserID || storedUsername != claims.Username {
		return "", ErrInvalidRefreshToken
	}

	account, err := s.accountRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
