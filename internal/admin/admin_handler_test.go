package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gabrieldacena/emprega-sapezal/internal/admin"
	adminerrors "github.com/gabrieldacena/emprega-sapezal/internal/admin/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/application"
	"github.com/gabrieldacena/emprega-sapezal/internal/content"
	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
)

type fakeAdminService struct {
	SummaryFn     func(ctx context.Context) (*admin.SummaryResponse, error)
	ListUsersFn   func(ctx context.Context, f admin.UserFilters) ([]admin.UserResponse, int64, error)
	ToggleUserFn  func(ctx context.Context, id string) (*admin.UserResponse, error)
	ModerateJobFn func(ctx context.Context, id, action string) (*job.JobResponse, error)
}

func (f *fakeAdminService) Summary(ctx context.Context) (*admin.SummaryResponse, error) {
	return f.SummaryFn(ctx)
}
func (f *fakeAdminService) Dashboard(context.Context) (*admin.SummaryCounts, error) {
	return nil, nil
}
func (f *fakeAdminService) Activity(context.Context) (*admin.SummaryActivity, error) {
	return nil, nil
}
func (f *fakeAdminService) ListUsers(ctx context.Context, filters admin.UserFilters) ([]admin.UserResponse, int64, error) {
	return f.ListUsersFn(ctx, filters)
}
func (f *fakeAdminService) ToggleUser(ctx context.Context, id string) (*admin.UserResponse, error) {
	return f.ToggleUserFn(ctx, id)
}
func (f *fakeAdminService) DeleteUser(context.Context, string) error { return nil }
func (f *fakeAdminService) ListJobs(context.Context, admin.ListingFilters) ([]job.JobResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeAdminService) ModerateJob(ctx context.Context, id, action string) (*job.JobResponse, error) {
	return f.ModerateJobFn(ctx, id, action)
}
func (f *fakeAdminService) DeleteJob(context.Context, string) error { return nil }
func (f *fakeAdminService) ListRentals(context.Context, admin.ListingFilters) ([]rental.RentalResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeAdminService) ModerateRental(context.Context, string, string) (*rental.RentalResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) DeleteRental(context.Context, string) error { return nil }
func (f *fakeAdminService) ListApplications(context.Context, admin.PageFilters) ([]application.ApplicationResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeAdminService) ListMessages(context.Context, admin.PageFilters) ([]admin.MessageResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeAdminService) DeleteMessage(context.Context, string) error { return nil }
func (f *fakeAdminService) ListAds(context.Context) ([]content.AdResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) CreateAd(context.Context, content.CreateAdRequest) (*content.AdResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) UpdateAd(context.Context, string, content.UpdateAdRequest) (*content.AdResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) DeleteAd(context.Context, string) error { return nil }
func (f *fakeAdminService) ListNews(context.Context) ([]content.NewsResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) CreateNews(context.Context, content.CreateNewsRequest) (*content.NewsResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) UpdateNews(context.Context, string, content.UpdateNewsRequest) (*content.NewsResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) DeleteNews(context.Context, string) error { return nil }
func (f *fakeAdminService) SetHeadline(context.Context, string) (*content.NewsResponse, error) {
	return nil, nil
}
func (f *fakeAdminService) GetSettings(context.Context) (map[string]string, error) {
	return nil, nil
}
func (f *fakeAdminService) UpdateSettings(context.Context, content.UpdateSettingsRequest) (map[string]string, error) {
	return nil, nil
}
func (f *fakeAdminService) DeleteSetting(context.Context, string) error { return nil }

func newTestContext(w *httptest.ResponseRecorder) (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	return gin.CreateTestContext(w)
}

func TestAdminHandler_Summary(t *testing.T) {
	svc := &fakeAdminService{
		SummaryFn: func(context.Context) (*admin.SummaryResponse, error) {
			return &admin.SummaryResponse{
				Contadores: admin.SummaryCounts{TotalUsuarios: 42, VagasAtivas: 7},
			}, nil
		},
	}

	h := admin.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := newTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/summary", nil)

	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Contadores struct {
				TotalUsuarios int64 `json:"totalUsuarios"`
				VagasAtivas   int64 `json:"vagasAtivas"`
			} `json:"contadores"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(42), body.Data.Contadores.TotalUsuarios)
	assert.Equal(t, int64(7), body.Data.Contadores.VagasAtivas)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	t.Run("clampa o limite e filtra por tipo", func(t *testing.T) {
		svc := &fakeAdminService{
			ListUsersFn: func(_ context.Context, f admin.UserFilters) ([]admin.UserResponse, int64, error) {
				assert.Equal(t, "EMPRESA", f.Tipo)
				assert.Equal(t, 100, f.Limit)
				return []admin.UserResponse{}, 0, nil
			},
		}

		h := admin.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/users?tipo=EMPRESA&limit=500", nil)

		h.ListUsers(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tipo fora do enum retorna 422", func(t *testing.T) {
		h := admin.NewHandler(&fakeAdminService{})
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/users?tipo=GERENTE", nil)

		h.ListUsers(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	})
}

func TestAdminHandler_ModerateJob(t *testing.T) {
	t.Run("repassa a ação para o serviço", func(t *testing.T) {
		jobID := uuid.New().String()
		svc := &fakeAdminService{
			ModerateJobFn: func(_ context.Context, id, action string) (*job.JobResponse, error) {
				assert.Equal(t, jobID, id)
				assert.Equal(t, "approve", action)
				return &job.JobResponse{ID: id, Status: "ATIVA"}, nil
			},
		}

		h := admin.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: jobID}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/admin/jobs/"+jobID,
			strings.NewReader(`{"action":"approve"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ModerateJob(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("corpo sem action retorna 422", func(t *testing.T) {
		h := admin.NewHandler(&fakeAdminService{})
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/admin/jobs/x", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ModerateJob(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("ação inválida propaga 400 do serviço", func(t *testing.T) {
		svc := &fakeAdminService{
			ModerateJobFn: func(context.Context, string, string) (*job.JobResponse, error) {
				return nil, adminerrors.ErrInvalidAction
			},
		}

		h := admin.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/admin/jobs/x",
			strings.NewReader(`{"action":"promote"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ModerateJob(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_ToggleUser(t *testing.T) {
	svc := &fakeAdminService{
		ToggleUserFn: func(_ context.Context, id string) (*admin.UserResponse, error) {
			return &admin.UserResponse{ID: id, Ativo: false}, nil
		},
	}

	h := admin.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := newTestContext(w)
	id := uuid.New().String()
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/admin/users/"+id+"/toggle", nil)

	h.ToggleUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data admin.UserResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body.Data.ID)
	assert.False(t, body.Data.Ativo)
}
