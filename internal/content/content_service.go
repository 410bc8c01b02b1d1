package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/shared/apperror"
)

const (
	cacheKeyAds      = "content:ads"
	cacheKeyNews     = "content:news"
	cacheKeyHeadline = "content:headline"
	cacheKeySettings = "content:settings"

	cacheTTL      = 5 * time.Minute
	publicNewsMax = 20
)

var errNewsNotFound = apperror.New(apperror.CodeNotFound, "Notícia não encontrada", http.StatusNotFound)

type Service interface {
	ListAds(ctx context.Context) ([]AdResponse, error)
	ListNews(ctx context.Context) ([]NewsResponse, error)
	GetHeadline(ctx context.Context) (*NewsResponse, error)
	GetNewsByID(ctx context.Context, id string) (*NewsResponse, error)
	GetSettings(ctx context.Context) (map[string]string, error)
	InvalidateCache(ctx context.Context)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("content.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

// fetchCached reads through the cache; concurrent misses for the same key are
// collapsed into one repository query.
func fetchCached[T any](ctx context.Context, s *service, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var cached T
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if payload, err := json.Marshal(value); err == nil {
				if err := s.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
					s.logger.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

func (s *service) ListAds(ctx context.Context) ([]AdResponse, error) {
	return fetchCached(ctx, s, cacheKeyAds, func(ctx context.Context) ([]AdResponse, error) {
		ads, err := s.repo.ListActiveAds(ctx)
		if err != nil {
			return nil, err
		}
		return MapAdsToResponse(ads), nil
	})
}

func (s *service) ListNews(ctx context.Context) ([]NewsResponse, error) {
	return fetchCached(ctx, s, cacheKeyNews, func(ctx context.Context) ([]NewsResponse, error) {
		items, err := s.repo.ListActiveNews(ctx, publicNewsMax)
		if err != nil {
			return nil, err
		}
		return MapNewsListToResponse(items), nil
	})
}

func (s *service) GetHeadline(ctx context.Context) (*NewsResponse, error) {
	return fetchCached(ctx, s, cacheKeyHeadline, func(ctx context.Context) (*NewsResponse, error) {
		n, err := s.repo.FindHeadline(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		resp := MapNewsToResponse(*n)
		return &resp, nil
	})
}

func (s *service) GetNewsByID(ctx context.Context, id string) (*NewsResponse, error) {
	nid, err := uuid.Parse(id)
	if err != nil {
		return nil, errNewsNotFound
	}
	n, err := s.repo.FindNewsByID(ctx, nid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNewsNotFound
		}
		return nil, err
	}
	resp := MapNewsToResponse(*n)
	return &resp, nil
}

func (s *service) GetSettings(ctx context.Context) (map[string]string, error) {
	return fetchCached(ctx, s, cacheKeySettings, func(ctx context.Context) (map[string]string, error) {
		settings, err := s.repo.ListSettings(ctx)
		if err != nil {
			return nil, err
		}
		result := make(map[string]string, len(settings))
		for _, setting := range settings {
			result[setting.Chave] = setting.Valor
		}
		return result, nil
	})
}

// InvalidateCache drops every public content key. Called after admin writes.
func (s *service) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKeyAds, cacheKeyNews, cacheKeyHeadline, cacheKeySettings).Err(); err != nil {
		s.logger.Warn("content cache invalidation failed", zap.Error(err))
	}
}
