package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/retailbooks/daily_ledger_app/internal/core/domain"
)

// CallerClaims are the JWT claims that carry a caller's identity.
type CallerClaims struct {
	Role     domain.Role `json:"role"`
	BranchID int64       `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}

// ErrInvalidCallerClaims is returned when a well-signed token does not describe a usable caller.
var ErrInvalidCallerClaims = errors.New("invalid caller claims")

// GenerateCallerToken issues an HS256 token for caller.
func GenerateCallerToken(caller domain.CallerContext, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := CallerClaims{
		Role:     caller.Role,
		BranchID: caller.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   caller.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCallerToken validates the signature, standard claims and issuer (when non-empty)
// of tokenString and returns the caller it describes.
func ParseCallerToken(tokenString, secret, issuer string) (domain.CallerContext, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &CallerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return domain.CallerContext{}, err
	}
	if !token.Valid {
		return domain.CallerContext{}, jwt.ErrTokenSignatureInvalid
	}

	caller := domain.CallerContext{UserID: claims.Subject, Role: claims.Role, BranchID: claims.BranchID}
	switch {
	case caller.UserID == "":
		return domain.CallerContext{}, fmt.Errorf("%w: subject missing", ErrInvalidCallerClaims)
	case !caller.Role.IsValid():
		return domain.CallerContext{}, fmt.Errorf("%w: unknown role %q", ErrInvalidCallerClaims, caller.Role)
	case !caller.IsAdmin() && caller.BranchID <= 0:
		return domain.CallerContext{}, fmt.Errorf("%w: branch_id required for role %s", ErrInvalidCallerClaims, caller.Role)
	}
	return caller, nil
}

// FormatBranchID renders a branch id for logs and analytics properties.
func FormatBranchID(branchID int64) string {
	if branchID <= 0 {
		return ""
	}
	return strconv.FormatInt(branchID, 10)
}
