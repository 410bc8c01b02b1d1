package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminerrors "github.com/gabrieldacena/emprega-sapezal/internal/admin/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/response"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/storage"
)

const (
	maxUploadBytes = 5 * 1024 * 1024
	uploadFolder   = "emprega-sapezal"
	uploadTimeout  = 20 * time.Second
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type UploadHandler struct {
	uploader storage.ImageUploader
	logger   *zap.Logger
}

func NewUploadHandler(uploader storage.ImageUploader, logger ...*zap.Logger) *UploadHandler {
	l := zap.L().Named("admin.upload")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.upload")
	}
	return &UploadHandler{uploader: uploader, logger: l}
}

type uploadResponse struct {
	Url      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		h.fail(c, adminerrors.ErrStorageUnavailable)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		h.fail(c, adminerrors.ErrNoFile)
		return
	}
	if header.Size > maxUploadBytes {
		h.fail(c, adminerrors.ErrFileTooLarge)
		return
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		h.fail(c, adminerrors.ErrUnsupportedFileType)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.fail(c, adminerrors.ErrStorageUnavailable)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	result, err := h.uploader.UploadImage(ctx, uploadFolder, file)
	if err != nil {
		h.logger.Error("image upload failed", zap.Error(err))
		h.fail(c, adminerrors.ErrStorageUnavailable)
		return
	}

	response.Success(c, http.StatusCreated, uploadResponse{Url: result.URL, PublicID: result.PublicID})
}

func (h *UploadHandler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}
