package adsdomain

// ErrorResponse representa o corpo de erro padrão das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsQuotaExceeded verifica se a API recusou a consulta por cota
func (e *ErrorResponse) IsQuotaExceeded() bool {
	return e.Error.Code == 429 || e.Error.Status == "RESOURCE_EXHAUSTED"
}

// IsUnauthenticated verifica se o access token foi recusado
func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED" || e.Error.Status == "PERMISSION_DENIED"
}

// Classification resume o erro para os logs
func (e *ErrorResponse) Classification() string {
	switch {
	case e.IsQuotaExceeded():
		return "quota"
	case e.IsUnauthenticated():
		return "auth"
	case e.Error.Status == "INVALID_ARGUMENT":
		return "invalid_query"
	default:
		return "unknown"
	}
}
