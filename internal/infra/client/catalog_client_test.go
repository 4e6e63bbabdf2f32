package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/219WD/jamrock-front-sub001/internal/apperr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogClient(t *testing.T, handler http.HandlerFunc) *CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := zerolog.Nop()
	return NewCatalogClient(srv.URL, 5*time.Second, &logger)
}

func TestListProductsSkipsUndecodableEntries(t *testing.T) {
	c := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		// rating 是字串的 entry 解不開，要被略過而不是報錯
		w.Write([]byte(`[
			{"id":"p1","title":"flor","rating":4,"stock":5,"price":1500.5},
			{"id":"p2","title":"rota","rating":"cinco","stock":5},
			{"id":"p3","title":"aceite","rating":3,"stock":0,"isActive":false}
		]`))
	})

	entries, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].ProductID)
	assert.Equal(t, "p3", entries[1].ProductID)
}

func TestListProductsServiceError(t *testing.T) {
	c := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"catalogo en mantenimiento"}`))
	})

	_, err := c.ListProducts(context.Background())

	var se *apperr.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "catalogo en mantenimiento", se.Message)
}

func TestListProductsMalformedBody(t *testing.T) {
	c := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := c.ListProducts(context.Background())

	var se *apperr.ServiceError
	require.ErrorAs(t, err, &se)
}
