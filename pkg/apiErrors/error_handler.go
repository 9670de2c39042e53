package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrInvalidSharedSecret   = "AUTH_010" // Segredo compartilhado inválido

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Falha ao gravar no destino
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrConflict          = "SRV_005" // Operação já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidSharedSecret:   http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrConflict:              http.StatusConflict,
}

// APIError é o corpo padronizado das respostas de erro
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError escolhe o código a partir do tipo do erro do domínio
func WriteFromError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// FromError converte um erro do domínio em um erro de API
func FromError(err error) APIError {
	if err == nil {
		return APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}
	}

	switch {
	case domain.IsValidationError(err):
		return APIError{Code: ErrInvalidRequest, Message: err.Error()}
	case domain.IsAuthError(err), domain.IsUpstreamQueryError(err):
		return APIError{Code: ErrExternalService, Message: err.Error()}
	case domain.IsDestinationWriteError(err):
		return APIError{Code: ErrDatabaseOperation, Message: err.Error()}
	default:
		return APIError{Code: ErrInternalServer, Message: err.Error()}
	}
}
