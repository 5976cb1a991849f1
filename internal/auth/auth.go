// Package auth provides credential checks and JWT session tokens. Accounts
// are demo-grade: a small set of seeded users with known passwords, and any
// other credential pair is accepted as a fresh level-1 learner.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// User is an authenticated account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	KoreanLevel int    `json:"koreanLevel"`
}

type demoAccount struct {
	passwordHash []byte
	name         string
	koreanLevel  int
}

// Seeded accounts with fixed proficiency levels so the curriculum and tutor
// routes can be exercised at every band without a real user store.
var demoAccounts map[string]demoAccount

func init() {
	demoAccounts = make(map[string]demoAccount)
	for email, acct := range map[string]struct {
		password string
		name     string
		level    int
	}{
		"mira@kolearn.app":  {"annyeong123", "Mira", 1},
		"arif@kolearn.app":  {"saranghae22", "Arif", 2},
		"sujin@kolearn.app": {"hanguk4ever", "Su-jin", 4},
		"wei@kolearn.app":   {"topik6master", "Wei Ling", 6},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("hash demo password: %v", err))
		}
		demoAccounts[strings.ToLower(email)] = demoAccount{
			passwordHash: hash,
			name:         acct.name,
			koreanLevel:  acct.level,
		}
	}
}

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	KoreanLevel int    `json:"koreanLevel"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service. The secret must be non-empty.
func NewService(secret string, tokenTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// SignIn authenticates a credential pair. Seeded accounts must present the
// right password; any other email/password pair is accepted as a new level-1
// learner named after the email's local part.
func (s *Service) SignIn(email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, fmt.Errorf("email and password are required")
	}

	key := strings.ToLower(email)
	if acct, ok := demoAccounts[key]; ok {
		if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
			return User{}, fmt.Errorf("invalid credentials")
		}
		return User{
			ID:          key,
			Email:       email,
			Name:        acct.name,
			KoreanLevel: acct.koreanLevel,
		}, nil
	}

	return User{
		ID:          key,
		Email:       email,
		Name:        localPart(email),
		KoreanLevel: 1,
	}, nil
}

// SignUp registers a new account. New learners start at level 0 until a
// placement happens. Seeded emails cannot be re-registered.
func (s *Service) SignUp(email, password, name string) (User, error) {
	if email == "" || password == "" || name == "" {
		return User{}, fmt.Errorf("email, password and name are required")
	}
	key := strings.ToLower(email)
	if _, ok := demoAccounts[key]; ok {
		return User{}, fmt.Errorf("account already exists")
	}
	return User{
		ID:          key,
		Email:       email,
		Name:        name,
		KoreanLevel: 0,
	}, nil
}

// IssueToken signs a session token for the user.
func (s *Service) IssueToken(u User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:        u.Name,
		Email:       u.Email,
		KoreanLevel: u.KoreanLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a session token and returns its claims.
func (s *Service) ParseToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
