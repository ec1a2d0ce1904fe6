package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// The unlock passwords are a shared-secret speed bump carried over from
// the original site (a kid needs a grown-up to start a test or peek at
// explanations). They are NOT an access-control boundary and must never
// gate scoring or progress; only the two presentational routes below
// ever check a token.

const (
	ScopeTest         = "test"
	ScopeExplanations = "explanations"
)

type Unlocker struct {
	hmac     []byte
	lifetime time.Duration
	hashes   map[string][]byte // scope -> bcrypt hash
}

type unlockClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func NewUnlocker(secret string, lifetime time.Duration, testHash, explainHash []byte) *Unlocker {
	return &Unlocker{
		hmac:     []byte(secret),
		lifetime: lifetime,
		hashes: map[string][]byte{
			ScopeTest:         testHash,
			ScopeExplanations: explainHash,
		},
	}
}

func (u *Unlocker) issue(scope string) (string, error) {
	now := time.Now()
	claims := &unlockClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "popsmath",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.lifetime)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(u.hmac)
}

func (u *Unlocker) parse(tokenStr string) (*unlockClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &unlockClaims{}, func(t *jwt.Token) (interface{}, error) {
		return u.hmac, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	c, _ := token.Claims.(*unlockClaims)
	return c, nil
}

// POST /unlock  { "scope": "test"|"explanations", "password": "..." }
func UnlockHandler(u *Unlocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Scope    string `json:"scope"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		hash, ok := u.hashes[req.Scope]
		if !ok {
			http.Error(w, "unknown scope", http.StatusBadRequest)
			return
		}
		if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
			http.Error(w, "incorrect password", http.StatusUnauthorized)
			return
		}
		tok, err := u.issue(req.Scope)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"unlock_token": tok})
	}
}

// RequireUnlock guards a presentational route with a scope's token.
func RequireUnlock(u *Unlocker, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing unlock token", http.StatusUnauthorized)
				return
			}
			c, err := u.parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil || c.Scope != scope {
				http.Error(w, "bad unlock token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HashPassword derives the bcrypt hash for a configured plaintext
// password at boot, when no precomputed hash is supplied.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}
