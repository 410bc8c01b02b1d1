package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/content"
)

type fakeContentRepo struct {
	ads          []content.Advertisement
	news         []content.NewsArticle
	settings     []content.SiteSetting
	headline     *content.NewsArticle
	listAdsCalls int
	listErr      error
}

func (f *fakeContentRepo) ListActiveAds(context.Context) ([]content.Advertisement, error) {
	f.listAdsCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ads, nil
}
func (f *fakeContentRepo) ListAllAds(context.Context) ([]content.Advertisement, error) {
	return f.ads, nil
}
func (f *fakeContentRepo) FindAdByID(context.Context, uuid.UUID) (*content.Advertisement, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeContentRepo) CreateAd(context.Context, *content.Advertisement) error { return nil }
func (f *fakeContentRepo) UpdateAd(context.Context, *content.Advertisement) error { return nil }
func (f *fakeContentRepo) DeleteAd(context.Context, uuid.UUID) error              { return nil }

func (f *fakeContentRepo) ListActiveNews(context.Context, int) ([]content.NewsArticle, error) {
	return f.news, nil
}
func (f *fakeContentRepo) ListAllNews(context.Context) ([]content.NewsArticle, error) {
	return f.news, nil
}
func (f *fakeContentRepo) FindNewsByID(_ context.Context, id uuid.UUID) (*content.NewsArticle, error) {
	for i := range f.news {
		if f.news[i].ID == id {
			return &f.news[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeContentRepo) FindHeadline(context.Context) (*content.NewsArticle, error) {
	if f.headline == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.headline, nil
}
func (f *fakeContentRepo) CreateNews(context.Context, *content.NewsArticle) error { return nil }
func (f *fakeContentRepo) UpdateNews(context.Context, *content.NewsArticle) error { return nil }
func (f *fakeContentRepo) DeleteNews(context.Context, uuid.UUID) error            { return nil }
func (f *fakeContentRepo) SetHeadline(context.Context, uuid.UUID) (*content.NewsArticle, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContentRepo) ListSettings(context.Context) ([]content.SiteSetting, error) {
	return f.settings, nil
}
func (f *fakeContentRepo) FindSetting(context.Context, string) (*content.SiteSetting, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeContentRepo) UpsertSetting(context.Context, string, string) (*content.SiteSetting, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeContentRepo) DeleteSetting(context.Context, string) error { return nil }

func TestContentService_ListAds(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit não consulta o banco", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeContentRepo{}
		svc := content.NewService(repo, rdb)

		cached := []content.AdResponse{{ID: uuid.New().String(), Titulo: "Banner safra"}}
		payload, _ := json.Marshal(cached)
		mock.ExpectGet("content:ads").SetVal(string(payload))

		resp, err := svc.ListAds(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Banner safra", resp[0].Titulo)
		assert.Zero(t, repo.listAdsCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss consulta o banco e grava o cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeContentRepo{
			ads: []content.Advertisement{{ID: uuid.New(), Titulo: "Banner rodapé", Ativo: true}},
		}
		svc := content.NewService(repo, rdb)

		mock.ExpectGet("content:ads").RedisNil()
		mock.Regexp().ExpectSet("content:ads", `.*`, 5*time.Minute).SetVal("OK")

		resp, err := svc.ListAds(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 1, repo.listAdsCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeContentRepo{listErr: errors.New("db down")}
		svc := content.NewService(repo, rdb)

		mock.ExpectGet("content:ads").RedisNil()

		_, err := svc.ListAds(ctx)

		assert.Error(t, err)
	})
}

func TestContentService_GetSettings(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := &fakeContentRepo{
		settings: []content.SiteSetting{
			{Chave: "telefone_contato", Valor: "(65) 99999-0000"},
			{Chave: "email_contato", Valor: "contato@empregasapezal.com.br"},
		},
	}
	svc := content.NewService(repo, rdb)

	mock.ExpectGet("content:settings").RedisNil()
	mock.Regexp().ExpectSet("content:settings", `.*`, 5*time.Minute).SetVal("OK")

	resp, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "(65) 99999-0000", resp["telefone_contato"])
	assert.Equal(t, "contato@empregasapezal.com.br", resp["email_contato"])
}

func TestContentService_GetHeadline_SemDestaque(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := &fakeContentRepo{}
	svc := content.NewService(repo, rdb)

	mock.ExpectGet("content:headline").RedisNil()
	mock.Regexp().ExpectSet("content:headline", `.*`, 5*time.Minute).SetVal("OK")

	resp, err := svc.GetHeadline(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestContentService_InvalidateCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := content.NewService(&fakeContentRepo{}, rdb)

	mock.ExpectDel("content:ads", "content:news", "content:headline", "content:settings").SetVal(4)

	svc.InvalidateCache(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentService_GetNewsByID(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	article := content.NewsArticle{ID: uuid.New(), Titulo: "Obras na MT-235", Conteudo: "Texto completo da notícia.", Ativo: true}
	repo := &fakeContentRepo{news: []content.NewsArticle{article}}
	svc := content.NewService(repo, rdb)

	t.Run("encontrada", func(t *testing.T) {
		resp, err := svc.GetNewsByID(context.Background(), article.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "Obras na MT-235", resp.Titulo)
	})

	t.Run("id desconhecido", func(t *testing.T) {
		_, err := svc.GetNewsByID(context.Background(), uuid.New().String())
		assert.Error(t, err)
	})
}
