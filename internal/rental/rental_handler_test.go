package rental_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
	rentalerrors "github.com/gabrieldacena/emprega-sapezal/internal/rental/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRentalService struct {
	ListPublicFn     func(ctx context.Context, f rental.PublicFilters) ([]rental.RentalResponse, int64, error)
	GetByIDFn        func(ctx context.Context, rentalID, viewerID, viewerRole string) (*rental.RentalResponse, error)
	ListMineFn       func(ctx context.Context, userID string) ([]rental.RentalResponse, error)
	CreateFn         func(ctx context.Context, userID string, req rental.CreateRentalRequest) (*rental.RentalResponse, error)
	UpdateFn         func(ctx context.Context, rentalID, userID string, req rental.UpdateRentalRequest) (*rental.RentalResponse, error)
	UpdateStatusFn   func(ctx context.Context, rentalID, userID, status string) (*rental.RentalResponse, error)
	DeleteFn         func(ctx context.Context, rentalID, userID string) error
	SendContactMsgFn func(ctx context.Context, rentalID string, req rental.ContactMessageRequest) (*rental.ContactMessageResponse, error)
}

func (f *fakeRentalService) ListPublic(ctx context.Context, filters rental.PublicFilters) ([]rental.RentalResponse, int64, error) {
	return f.ListPublicFn(ctx, filters)
}
func (f *fakeRentalService) GetByID(ctx context.Context, rentalID, viewerID, viewerRole string) (*rental.RentalResponse, error) {
	return f.GetByIDFn(ctx, rentalID, viewerID, viewerRole)
}
func (f *fakeRentalService) ListMine(ctx context.Context, userID string) ([]rental.RentalResponse, error) {
	return f.ListMineFn(ctx, userID)
}
func (f *fakeRentalService) Create(ctx context.Context, userID string, req rental.CreateRentalRequest) (*rental.RentalResponse, error) {
	return f.CreateFn(ctx, userID, req)
}
func (f *fakeRentalService) Update(ctx context.Context, rentalID, userID string, req rental.UpdateRentalRequest) (*rental.RentalResponse, error) {
	return f.UpdateFn(ctx, rentalID, userID, req)
}
func (f *fakeRentalService) UpdateStatus(ctx context.Context, rentalID, userID, status string) (*rental.RentalResponse, error) {
	return f.UpdateStatusFn(ctx, rentalID, userID, status)
}
func (f *fakeRentalService) Delete(ctx context.Context, rentalID, userID string) error {
	return f.DeleteFn(ctx, rentalID, userID)
}
func (f *fakeRentalService) SendContactMessage(ctx context.Context, rentalID string, req rental.ContactMessageRequest) (*rental.ContactMessageResponse, error) {
	return f.SendContactMsgFn(ctx, rentalID, req)
}

func testContext(w *httptest.ResponseRecorder) (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	return gin.CreateTestContext(w)
}

func TestRentalHandler_List(t *testing.T) {
	t.Run("filtros de valor chegam tipados no serviço", func(t *testing.T) {
		svc := &fakeRentalService{
			ListPublicFn: func(ctx context.Context, f rental.PublicFilters) ([]rental.RentalResponse, int64, error) {
				if assert.NotNil(t, f.ValorMin) {
					assert.InDelta(t, 500, *f.ValorMin, 0.01)
				}
				if assert.NotNil(t, f.ValorMax) {
					assert.InDelta(t, 2000, *f.ValorMax, 0.01)
				}
				return nil, 0, nil
			},
		}

		h := rental.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/rentals?valorMin=500&valorMax=2000", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRentalHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeRentalService{
			CreateFn: func(ctx context.Context, uid string, req rental.CreateRentalRequest) (*rental.RentalResponse, error) {
				assert.Equal(t, userID, uid)
				return &rental.RentalResponse{ID: uuid.New().String(), Titulo: req.Titulo, Status: "PENDENTE_APROVACAO"}, nil
			},
		}

		h := rental.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)

		body := `{"titulo":"Casa no centro","tipoImovel":"CASA","valorAluguel":1800,"cidade":"Sapezal","estado":"MT","descricao":"Casa com três quartos."}`
		c.Request = httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("valor não positivo", func(t *testing.T) {
		h := rental.NewHandler(&fakeRentalService{}, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)

		body := `{"titulo":"Casa","tipoImovel":"CASA","valorAluguel":0,"cidade":"Sapezal","estado":"MT","descricao":"Descrição suficiente."}`
		c.Request = httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRentalHandler_SendContact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rentalID := uuid.New().String()
		svc := &fakeRentalService{
			SendContactMsgFn: func(ctx context.Context, rid string, req rental.ContactMessageRequest) (*rental.ContactMessageResponse, error) {
				assert.Equal(t, rentalID, rid)
				return &rental.ContactMessageResponse{ID: uuid.New().String(), RentalID: rid, Nome: req.Nome}, nil
			},
		}

		h := rental.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)

		body := `{"nome":"Maria","email":"maria@example.com","mensagem":"Tenho interesse."}`
		c.Request = httptest.NewRequest(http.MethodPost, "/rentals/"+rentalID+"/contact", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: rentalID}}

		h.SendContact(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("email inválido", func(t *testing.T) {
		h := rental.NewHandler(&fakeRentalService{}, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)

		body := `{"nome":"Maria","email":"not-an-email","mensagem":"Tenho interesse."}`
		c.Request = httptest.NewRequest(http.MethodPost, "/rentals/x/contact", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.SendContact(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("anúncio inexistente", func(t *testing.T) {
		svc := &fakeRentalService{
			SendContactMsgFn: func(ctx context.Context, rid string, req rental.ContactMessageRequest) (*rental.ContactMessageResponse, error) {
				return nil, rentalerrors.ErrRentalNotFound
			},
		}

		h := rental.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := testContext(w)

		body := `{"nome":"Maria","email":"maria@example.com","mensagem":"Tenho interesse."}`
		c.Request = httptest.NewRequest(http.MethodPost, "/rentals/x/contact", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: uuid.New().String()}}

		h.SendContact(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
