package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// tokenBlacklist holds revoked tokens until their natural expiry. It lives in
// process memory; with short-lived tokens that is enough for logout.
type tokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func newTokenBlacklist() *tokenBlacklist {
	return &tokenBlacklist{revoked: make(map[string]time.Time)}
}

// add records a token as revoked until expiry, purging stale entries while
// the write lock is held.
func (b *tokenBlacklist) add(token string, expiry time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for t, exp := range b.revoked {
		if exp.Before(now) {
			delete(b.revoked, t)
		}
	}
	b.revoked[token] = expiry
}

// contains reports whether a token is currently revoked.
func (b *tokenBlacklist) contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	expiry, ok := b.revoked[token]
	return ok && expiry.After(time.Now())
}

// AuthService handles registration, login and bearer token verification.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	blacklist *tokenBlacklist
}

// NewAuthService creates a new AuthService issuing tokens valid for ttl.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  ttl,
		blacklist: newTokenBlacklist(),
	}
}

// RegisterUser registers a new user, hashes their password and returns a
// signed bearer token for the fresh principal.
func (s *AuthService) RegisterUser(user *models.User) (string, error) {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return "", fmt.Errorf("%w: %q", ErrUsernameTaken, user.Username)
	} else if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return "", fmt.Errorf("%w: %q", ErrEmailTaken, user.Email)
	} else if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "admin"
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	log.Printf("User registered: %s (%s)", user.Username, user.ID)
	return s.issueToken(user)
}

// LoginUser authenticates a user and returns a fresh bearer token. The error
// is identical for an unknown username and a wrong password.
func (s *AuthService) LoginUser(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// issueToken signs an HS256 token bound to the principal's identity and role.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// parseToken validates the signature and standard claims of a token string.
func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		// The reason (expired vs malformed) is logged for diagnostics but
		// never surfaces to the caller.
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateToken verifies a bearer token and resolves it to its principal. It
// fails if the token is malformed, expired, revoked via Logout, or if the
// principal no longer exists.
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	if s.blacklist.contains(tokenString) {
		log.Printf("Rejected revoked token")
		return nil, ErrInvalidToken
	}

	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("Token principal %s no longer exists", userID)
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Logout revokes a token until its expiry. The token must still be valid.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.tokenTTL)
	if exp, ok := claims["exp"].(float64); ok {
		expiry = time.Unix(int64(exp), 0)
	}
	s.blacklist.add(tokenString, expiry)

	log.Printf("Token revoked for user %v", claims["username"])
	return nil
}

// ResetPassword re-hashes and stores a new password for the named user.
func (s *AuthService) ResetPassword(username, newPassword string) error {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	log.Printf("Password reset for user %s", username)
	return nil
}
