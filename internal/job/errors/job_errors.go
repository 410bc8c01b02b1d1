package joberrors

import (
	"net/http"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	ErrJobNotFound            = apperror.New(apperror.CodeNotFound, "Vaga não encontrada", http.StatusNotFound)
	ErrNotJobOwner            = apperror.New(apperror.CodeForbidden, "Você não tem permissão para gerenciar esta vaga", http.StatusForbidden)
	ErrInvalidStatus          = apperror.New(apperror.CodeBadRequest, "Status inválido. Use ATIVA ou INATIVA.", http.StatusBadRequest)
	ErrCompanyProfileRequired = apperror.New("PROFILE_REQUIRED", "Perfil de empresa não encontrado", http.StatusNotFound)
	ErrInvalidJobID           = apperror.New(apperror.CodeBadRequest, "ID de vaga inválido", http.StatusBadRequest)
)
