package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain"
	"github.com/jhoicas/tempero-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials usuario y contraseña en claro del operador, tal como llegan de config.
type Credentials struct {
	Username string
	Password string
}

// AuthUseCase login del operador del restaurante. Hay un único usuario; la
// contraseña se hashea con bcrypt al construir el caso de uso y nunca se
// compara en claro.
type AuthUseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear password: %w", err)
	}
	return &AuthUseCase{username: creds.Username, passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario/password y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.username)) == 1
	// bcrypt se evalúa siempre para no delatar por tiempo si el usuario existe.
	passErr := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, domain.ErrUnauthorized
	}
	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, uc.username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  uc.username,
	}, nil
}
