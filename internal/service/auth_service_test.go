package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"datosempleado/internal/domain"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	credential := domain.Credential{ID: 1, Username: "admin", PasswordHash: string(hash)}
	return NewAuthService(credential, NewJWTService("secret", time.Hour))
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc := testAuthService(t)

	token, err := svc.Login("admin", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := NewJWTService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Username != "admin" || claims.SubjectID() != 1 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_WrongPasswordAndUnknownUserAreIndistinguishable(t *testing.T) {
	svc := testAuthService(t)

	_, errPassword := svc.Login("admin", "wrong")
	_, errUser := svc.Login("nobody", "password123")

	if !errors.Is(errPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errPassword)
	}
	if !errors.Is(errUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUser)
	}
	if errPassword.Error() != errUser.Error() {
		t.Fatalf("errors leak user existence: %q vs %q", errPassword, errUser)
	}
}

func TestAuthService_RejectsEmptyInput(t *testing.T) {
	svc := testAuthService(t)

	if _, err := svc.Login("", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("admin", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}
