package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Registro não encontrado.",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Você não tem permissão para acessar este recurso.",
		http.StatusForbidden,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Autenticação necessária. Faça login para continuar.",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeBadRequest,
		"Dados inválidos.",
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"Erro interno do servidor.",
		http.StatusInternalServerError,
	)
)
