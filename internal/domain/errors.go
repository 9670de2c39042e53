package domain

import (
	"errors"
	"fmt"
)

// AuthError indica falha na troca do refresh token por um access token.
// É fatal para a operação corrente e nunca é repetida internamente.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("OAuth token exchange failed (%d): %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("OAuth token exchange failed: %s", e.Err.Error())
	}
	return "OAuth token exchange failed"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UpstreamQueryError carrega o status e o corpo da API de consulta sem alteração,
// para que o chamador consiga distinguir cota, autenticação e consulta malformada.
type UpstreamQueryError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamQueryError) Error() string {
	return fmt.Sprintf("Google Ads API Error (%d): %s", e.StatusCode, e.Body)
}

// DestinationWriteError indica que o datastore de destino rejeitou um lote
type DestinationWriteError struct {
	Table      string
	Op         string
	StatusCode int
	Err        error
}

func (e *DestinationWriteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("destination %s on %q failed (%d): %v", e.Op, e.Table, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("destination %s on %q failed: %v", e.Op, e.Table, e.Err)
}

func (e *DestinationWriteError) Unwrap() error {
	return e.Err
}

// ValidationError indica intervalo de datas ausente ou malformado, ou configuração faltando
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsUpstreamQueryError(err error) bool {
	var target *UpstreamQueryError
	return errors.As(err, &target)
}

func IsDestinationWriteError(err error) bool {
	var target *DestinationWriteError
	return errors.As(err, &target)
}
