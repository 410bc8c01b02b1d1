package autherrors

import (
	"net/http"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Autenticação necessária. Faça login para continuar.",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token inválido ou expirado. Faça login novamente.",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Você não tem permissão para acessar este recurso.",
		http.StatusForbidden,
	)
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos.",
		http.StatusUnauthorized,
	)
	ErrAccountDisabled = apperror.New(
		"ACCOUNT_DISABLED",
		"Sua conta foi desativada. Entre em contato com o administrador.",
		http.StatusForbidden,
	)
	ErrDuplicateEmail = apperror.New(
		"DUPLICATE_EMAIL",
		"Este e-mail já está cadastrado.",
		http.StatusConflict,
	)
	ErrTokenGeneration = apperror.New(
		apperror.CodeInternalError,
		"Não foi possível gerar o token de acesso.",
		http.StatusInternalServerError,
	)
)
