package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"portfolio/config"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrNoVerifier   = errors.New("no session verification key configured")
)

// Claims are the parts of an identity provider session token this service reads.
// Subject carries the external identity id.
type Claims struct {
	SessionID string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// JWT verifies session tokens issued by the external identity provider.
type JWT interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Service verifies RS256 tokens when a public key is configured and HS256 tokens otherwise.
type Service struct {
	publicKey *rsa.PublicKey
	secret    []byte
	parser    *jwt.Parser
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	service := &Service{}

	options := []jwt.ParserOption{jwt.WithExpirationRequired()}

	if pem := strings.TrimSpace(cfg.Auth.PublicKey); pem != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(strings.ReplaceAll(pem, `\n`, "\n")))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse identity provider public key")
		}

		service.publicKey = key
		options = append(options, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	} else {
		service.secret = []byte(cfg.Auth.SecretKey)
		options = append(options, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	}

	if cfg.Auth.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	service.parser = jwt.NewParser(options...)

	return service
}

func (s *Service) key(_ *jwt.Token) (any, error) {
	if s.publicKey != nil {
		return s.publicKey, nil
	}

	if len(s.secret) == 0 {
		return nil, ErrNoVerifier
	}

	return s.secret, nil
}

// ValidateToken validates and parses a session token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, s.key)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := strings.TrimSpace(authHeader[len(prefix):])
	if token == "" {
		return "", errors.New("authorization header carries no token")
	}

	return token, nil
}
