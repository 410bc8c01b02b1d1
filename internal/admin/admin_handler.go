package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gabrieldacena/emprega-sapezal/internal/content"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) Summary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Activity(c *gin.Context) {
	resp, err := h.service.Activity(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ListUsers(c *gin.Context) {
	var filters UserFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.writeBindError(c, err)
		return
	}
	filters.Normalize()

	users, total, err := h.service.ListUsers(c.Request.Context(), filters)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, users, response.NewPagination(total, filters.Page, filters.Limit))
}

func (h *Handler) ToggleUser(c *gin.Context) {
	resp, err := h.service.ToggleUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Usuário removido com sucesso."})
}

func (h *Handler) ListJobs(c *gin.Context) {
	var filters ListingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.writeBindError(c, err)
		return
	}
	filters.Normalize()

	jobs, total, err := h.service.ListJobs(c.Request.Context(), filters)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, jobs, response.NewPagination(total, filters.Page, filters.Limit))
}

func (h *Handler) ModerateJob(c *gin.Context) {
	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.ModerateJob(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	if err := h.service.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Vaga removida com sucesso."})
}

func (h *Handler) ListRentals(c *gin.Context) {
	var filters ListingFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.writeBindError(c, err)
		return
	}
	filters.Normalize()

	rentals, total, err := h.service.ListRentals(c.Request.Context(), filters)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, rentals, response.NewPagination(total, filters.Page, filters.Limit))
}

func (h *Handler) ModerateRental(c *gin.Context) {
	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.ModerateRental(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteRental(c *gin.Context) {
	if err := h.service.DeleteRental(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Imóvel removido com sucesso."})
}

func (h *Handler) ListApplications(c *gin.Context) {
	var filters PageFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.writeBindError(c, err)
		return
	}
	filters.Normalize()

	apps, total, err := h.service.ListApplications(c.Request.Context(), filters)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, apps, response.NewPagination(total, filters.Page, filters.Limit))
}

func (h *Handler) ListMessages(c *gin.Context) {
	var filters PageFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.writeBindError(c, err)
		return
	}
	filters.Normalize()

	messages, total, err := h.service.ListMessages(c.Request.Context(), filters)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, messages, response.NewPagination(total, filters.Page, filters.Limit))
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	if err := h.service.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Mensagem removida com sucesso."})
}

func (h *Handler) ListAds(c *gin.Context) {
	resp, err := h.service.ListAds(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CreateAd(c *gin.Context) {
	var req content.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.CreateAd(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdateAd(c *gin.Context) {
	var req content.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.UpdateAd(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteAd(c *gin.Context) {
	if err := h.service.DeleteAd(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Anúncio removido com sucesso."})
}

func (h *Handler) ListNews(c *gin.Context) {
	resp, err := h.service.ListNews(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CreateNews(c *gin.Context) {
	var req content.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.CreateNews(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) UpdateNews(c *gin.Context) {
	var req content.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.UpdateNews(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteNews(c *gin.Context) {
	if err := h.service.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notícia removida com sucesso."})
}

func (h *Handler) SetHeadline(c *gin.Context) {
	resp, err := h.service.SetHeadline(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetSettings(c *gin.Context) {
	resp, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req content.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteSetting(c *gin.Context) {
	if err := h.service.DeleteSetting(c.Request.Context(), c.Param("chave")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Configuração removida com sucesso."})
}
