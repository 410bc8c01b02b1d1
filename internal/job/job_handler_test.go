package job_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	joberrors "github.com/gabrieldacena/emprega-sapezal/internal/job/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeJobService struct {
	ListPublicFn   func(ctx context.Context, f job.PublicFilters) ([]job.JobResponse, int64, error)
	GetByIDFn      func(ctx context.Context, jobID, viewerID, viewerRole string) (*job.JobResponse, error)
	ListMineFn     func(ctx context.Context, userID string) ([]job.JobResponse, error)
	CreateFn       func(ctx context.Context, userID string, req job.CreateJobRequest) (*job.JobResponse, error)
	UpdateFn       func(ctx context.Context, jobID, userID string, req job.UpdateJobRequest) (*job.JobResponse, error)
	UpdateStatusFn func(ctx context.Context, jobID, userID, status string) (*job.JobResponse, error)
	DeleteFn       func(ctx context.Context, jobID, userID string) error
}

func (f *fakeJobService) ListPublic(ctx context.Context, filters job.PublicFilters) ([]job.JobResponse, int64, error) {
	return f.ListPublicFn(ctx, filters)
}
func (f *fakeJobService) GetByID(ctx context.Context, jobID, viewerID, viewerRole string) (*job.JobResponse, error) {
	return f.GetByIDFn(ctx, jobID, viewerID, viewerRole)
}
func (f *fakeJobService) ListMine(ctx context.Context, userID string) ([]job.JobResponse, error) {
	return f.ListMineFn(ctx, userID)
}
func (f *fakeJobService) Create(ctx context.Context, userID string, req job.CreateJobRequest) (*job.JobResponse, error) {
	return f.CreateFn(ctx, userID, req)
}
func (f *fakeJobService) Update(ctx context.Context, jobID, userID string, req job.UpdateJobRequest) (*job.JobResponse, error) {
	return f.UpdateFn(ctx, jobID, userID, req)
}
func (f *fakeJobService) UpdateStatus(ctx context.Context, jobID, userID, status string) (*job.JobResponse, error) {
	return f.UpdateStatusFn(ctx, jobID, userID, status)
}
func (f *fakeJobService) Delete(ctx context.Context, jobID, userID string) error {
	return f.DeleteFn(ctx, jobID, userID)
}

func newTestContext(w *httptest.ResponseRecorder) (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	return gin.CreateTestContext(w)
}

func TestJobHandler_List(t *testing.T) {
	t.Run("success com paginação", func(t *testing.T) {
		svc := &fakeJobService{
			ListPublicFn: func(ctx context.Context, f job.PublicFilters) ([]job.JobResponse, int64, error) {
				assert.Equal(t, "Sapezal", f.Cidade)
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, 12, f.Limit)
				return []job.JobResponse{{ID: uuid.New().String(), Titulo: "Vaga"}}, 30, nil
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/jobs?cidade=Sapezal", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success    bool `json:"success"`
			Pagination struct {
				Total      int64 `json:"total"`
				TotalPages int   `json:"totalPages"`
			} `json:"pagination"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.EqualValues(t, 30, body.Pagination.Total)
		assert.Equal(t, 3, body.Pagination.TotalPages)
	})

	t.Run("limite acima do teto é reduzido", func(t *testing.T) {
		svc := &fakeJobService{
			ListPublicFn: func(ctx context.Context, f job.PublicFilters) ([]job.JobResponse, int64, error) {
				assert.Equal(t, 50, f.Limit)
				return nil, 0, nil
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/jobs?limit=500", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestJobHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeJobService{
			GetByIDFn: func(ctx context.Context, jobID, viewerID, viewerRole string) (*job.JobResponse, error) {
				return nil, joberrors.ErrJobNotFound
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/jobs/x", nil)
		c.Params = []gin.Param{{Key: "id", Value: uuid.New().String()}}

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestJobHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeJobService{
			CreateFn: func(ctx context.Context, uid string, req job.CreateJobRequest) (*job.JobResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, "Operador", req.Titulo)
				return &job.JobResponse{ID: uuid.New().String(), Titulo: req.Titulo, Status: "PENDENTE_APROVACAO"}, nil
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)

		body := `{"titulo":"Operador","descricao":"Operação de máquinas na fazenda.","tipoContrato":"CLT","modeloTrabalho":"PRESENCIAL","cidade":"Sapezal","estado":"MT"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("payload inválido", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{})
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"titulo":"ok"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("tipo de contrato fora do enum", func(t *testing.T) {
		h := job.NewHandler(&fakeJobService{})
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)

		body := `{"titulo":"Operador","descricao":"Descrição suficiente aqui.","tipoContrato":"MENSALISTA","modeloTrabalho":"PRESENCIAL","cidade":"Sapezal","estado":"MT"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestJobHandler_UpdateStatus(t *testing.T) {
	t.Run("status inválido", func(t *testing.T) {
		svc := &fakeJobService{
			UpdateStatusFn: func(ctx context.Context, jobID, userID, status string) (*job.JobResponse, error) {
				return nil, joberrors.ErrInvalidStatus
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPatch, "/jobs/x/status", strings.NewReader(`{"status":"REPROVADA"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Status inválido")
	})
}

func TestJobHandler_Delete(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		svc := &fakeJobService{
			DeleteFn: func(ctx context.Context, jobID, userID string) error {
				return joberrors.ErrNotJobOwner
			},
		}

		h := job.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := newTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/jobs/x", nil)
		c.Params = []gin.Param{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Delete(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
