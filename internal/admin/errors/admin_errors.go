package adminerrors

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

	ErrAdminProtected = apperror.New(
		apperror.CodeBadRequest,
		"Não é possível alterar ou remover usuários administradores.",
		http.StatusBadRequest,
	)

	ErrListingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Anúncio não encontrado.",
		http.StatusNotFound,
	)

	ErrInvalidAction = apperror.New(
		apperror.CodeBadRequest,
		"Ação de moderação inválida. Use approve, reject, hide, feature ou unfeature.",
		http.StatusBadRequest,
	)

	ErrMessageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mensagem não encontrada.",
		http.StatusNotFound,
	)

	ErrAdNotFound = apperror.New(
		apperror.CodeNotFound,
		"Anúncio publicitário não encontrado.",
		http.StatusNotFound,
	)

	ErrNewsNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notícia não encontrada.",
		http.StatusNotFound,
	)

	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Configuração não encontrada.",
		http.StatusNotFound,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeBadRequest,
		"Identificador inválido.",
		http.StatusBadRequest,
	)

	ErrNoFile = apperror.New(
		apperror.CodeBadRequest,
		"Nenhum arquivo enviado.",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeBadRequest,
		"Arquivo muito grande. O limite é 5MB.",
		http.StatusBadRequest,
	)

	ErrUnsupportedFileType = apperror.New(
		apperror.CodeBadRequest,
		"Tipo de arquivo não suportado. Use JPG, PNG, WEBP ou GIF.",
		http.StatusBadRequest,
	)

	ErrStorageUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Erro ao enviar arquivo para o storage.",
		http.StatusInternalServerError,
	)
)
