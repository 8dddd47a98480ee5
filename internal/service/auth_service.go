package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"datosempleado/internal/domain"
)

// ErrInvalidCredentials cubre tanto usuario desconocido como contraseña
// incorrecta; el llamador no puede distinguirlos.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService resuelve el login contra la única credencial configurada y
// emite tokens de sesión. La credencial es de solo lectura tras el arranque.
type AuthService struct {
	credential domain.Credential
	jwtServ    *JWTService
}

func NewAuthService(credential domain.Credential, jwtServ *JWTService) *AuthService {
	return &AuthService{credential: credential, jwtServ: jwtServ}
}

// Login compara usuario y digest de contraseña; si coinciden emite un token.
func (s *AuthService) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if username != s.credential.Username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.credential.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtServ.Issue(s.credential.ID, s.credential.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}
