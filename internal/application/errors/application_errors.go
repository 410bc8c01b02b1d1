package applicationerrors

import (
	"net/http"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	ErrApplicationNotFound      = apperror.New(apperror.CodeNotFound, "Candidatura não encontrada", http.StatusNotFound)
	ErrDuplicateApplication     = apperror.New("DUPLICATE_APPLICATION", "Você já se candidatou a esta vaga", http.StatusConflict)
	ErrJobNotAcceptingApplies   = apperror.New(apperror.CodeBadRequest, "Esta vaga não está disponível para candidatura", http.StatusBadRequest)
	ErrCandidateProfileRequired = apperror.New("PROFILE_REQUIRED", "Perfil de candidato não encontrado", http.StatusNotFound)
	ErrNotApplicationOwner      = apperror.New(apperror.CodeForbidden, "Sem permissão para alterar esta candidatura", http.StatusForbidden)
	ErrInvalidStatus            = apperror.New(apperror.CodeBadRequest, "Status de candidatura inválido", http.StatusBadRequest)
	ErrInvalidApplicationID     = apperror.New(apperror.CodeBadRequest, "ID de candidatura inválido", http.StatusBadRequest)
)
