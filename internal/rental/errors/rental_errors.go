package rentalerrors

import (
	"net/http"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

var (
	ErrRentalNotFound         = apperror.New(apperror.CodeNotFound, "Anúncio não encontrado", http.StatusNotFound)
	ErrNotRentalOwner         = apperror.New(apperror.CodeForbidden, "Você não tem permissão para gerenciar este anúncio", http.StatusForbidden)
	ErrInvalidStatus          = apperror.New(apperror.CodeBadRequest, "Status inválido. Use ATIVO ou INATIVO.", http.StatusBadRequest)
	ErrCompanyProfileRequired = apperror.New("PROFILE_REQUIRED", "Perfil de empresa não encontrado", http.StatusNotFound)
	ErrInvalidRentalID        = apperror.New(apperror.CodeBadRequest, "ID de anúncio inválido", http.StatusBadRequest)
)
