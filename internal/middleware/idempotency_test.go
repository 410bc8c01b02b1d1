package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const contactRoute = "/rentals/:id/contact"

func TestIdempotency_ReplayKeepsOriginalStatus(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:" + contactRoute + ":192.0.2.1:key-1"
	mock.ExpectGet(cacheKey).SetVal(`{"status":201,"data":{"id":"msg-1"}}`)

	gin.SetMode(gin.TestMode)
	handled := 0
	r := gin.New()
	r.POST(contactRoute, middleware.Idempotency(rdb, 24*time.Hour), func(c *gin.Context) {
		handled++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/rentals/r1/contact", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	req.RemoteAddr = "192.0.2.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, handled)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "msg-1", body.Data.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestStoresStatusAndBody(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:" + contactRoute + ":192.0.2.1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.Regexp().ExpectSet(cacheKey, `\{"status":201,"data":.+\}`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	gin.SetMode(gin.TestMode)
	handled := 0
	r := gin.New()
	r.POST(contactRoute, middleware.Idempotency(rdb, 24*time.Hour), func(c *gin.Context) {
		handled++
		payload := gin.H{"id": "msg-1"}
		middleware.StoreIdempotentResult(c, rdb, http.StatusCreated, payload)
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": payload})
	})

	req := httptest.NewRequest(http.MethodPost, "/rentals/r1/contact", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	req.RemoteAddr = "192.0.2.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentReplayRejected(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:" + contactRoute + ":192.0.2.1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	gin.SetMode(gin.TestMode)
	handled := 0
	r := gin.New()
	r.POST(contactRoute, middleware.Idempotency(rdb, 24*time.Hour), func(c *gin.Context) {
		handled++
	})

	req := httptest.NewRequest(http.MethodPost, "/rentals/r1/contact", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "key-1")
	req.RemoteAddr = "192.0.2.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, handled)

	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "PROCESSING", body.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	handled := 0
	r := gin.New()
	r.POST(contactRoute, middleware.Idempotency(rdb, 24*time.Hour), func(c *gin.Context) {
		handled++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/rentals/r1/contact", strings.NewReader(`{}`))
	req.RemoteAddr = "192.0.2.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, handled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
