package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimited(t *testing.T, maxRequests int) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(next), redisCache
}

func request(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.RemoteAddr = "10.0.0.7:51234"
	r.Header.Set(constant.RequestHeaderUserAgent, "front-desk-tablet")

	return r
}

func TestRateLimit_CountsPerClient(t *testing.T) {
	handler, redisCache := newLimited(t, 2)

	key := "limiter:10.0.0.7:front-desk-tablet"

	gomock.InOrder(
		redisCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil),
		redisCache.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request("/v1/bookings"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	handler, redisCache := newLimited(t, 2)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*int) = 2

			return nil
		})
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), 3, 60).Return(nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request("/v1/bookings"))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	handler, redisCache := newLimited(t, 2)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request("/v1/bookings"))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_SkipsHealthProbe(t *testing.T) {
	handler, _ := newLimited(t, 0)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request(constant.PathHealth))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
