package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrMissingSecret  = errors.New("AUTH_SECRET não configurado")
	ErrMissingSubject = errors.New("identificação do operador obrigatória")
)

// AuthError carrega o código de API que a camada HTTP devolve ao operador
type AuthError struct {
	Err    error
	Code   string
	Reason string
}

func NewAuthError(cause error, code, reason string) *AuthError {
	return &AuthError{Err: cause, Code: code, Reason: reason}
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Err, e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// CodeOf devolve o código de API do erro, ou fallback quando não é um AuthError
func CodeOf(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return fallback
}
