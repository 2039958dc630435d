package commerce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nopLogger{}), &calls
}

func TestClient_GetProduct(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/products/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Go Bootcamp","in_stock":true,"launch_at":"2025-09-01T10:00:00Z"}`))
	})

	product, err := client.GetProduct(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, int64(42), product.ID)
	assert.True(t, product.InStock)
	require.NotNil(t, product.LaunchAt)
	assert.Equal(t, time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), *product.LaunchAt)
}

func TestClient_GetProduct_StockStatusAndLaunchFormats(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"in_stock":true,"stock_status":"outofstock","launch_at":"2025-09-01 18:30"}`))
	})

	product, err := client.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, product.InStock)
	require.NotNil(t, product.LaunchAt)
	assert.Equal(t, 18, product.LaunchAt.Hour())
}

func TestClient_GetProduct_BadLaunchDate(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"in_stock":true,"launch_at":"soon"}`))
	})

	product, err := client.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, product.LaunchAt)
}

func TestClient_GetProduct_NoProduct(t *testing.T) {
	client, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	product, err := client.GetProduct(context.Background(), 0)
	assert.NoError(t, err)
	assert.Nil(t, product)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestClient_GetProduct_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetProduct(context.Background(), 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := client.GetProduct(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("bad json", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{`))
		})
		_, err := client.GetProduct(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_GetProductWithGracefulDegradation(t *testing.T) {
	t.Run("not found passes through", func(t *testing.T) {
		client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetProductWithGracefulDegradation(context.Background(), 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.NotErrorIs(t, err, ErrServiceDegraded)
	})

	t.Run("unavailable degrades", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})
		_, err := client.GetProductWithGracefulDegradation(context.Background(), 1)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})
}
