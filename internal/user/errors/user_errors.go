package usererrors

import (
	"net/http"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuário não encontrado.",
		http.StatusNotFound,
	)
	ErrCandidateProfileNotFound = apperror.New(
		"PROFILE_REQUIRED",
		"Perfil de candidato não encontrado.",
		http.StatusNotFound,
	)
	ErrCompanyProfileNotFound = apperror.New(
		"PROFILE_REQUIRED",
		"Perfil de empresa não encontrado.",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeBadRequest,
		"ID de usuário inválido.",
		http.StatusBadRequest,
	)
)
