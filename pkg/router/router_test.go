package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/quickstationery/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/shop", "shop.index", ok)
	r.Get("/orders/{id}", "orders.show", ok)

	path, found := r.Path("shop.index")
	require.True(t, found)
	assert.Equal(t, "/shop", path)

	url, err := r.URL("orders.show", map[string]string{"id": "QS42"})
	require.NoError(t, err)
	assert.Equal(t, "/orders/QS42", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err, "missing params must error")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndDispatch(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/cart/count", "api.cart.count", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("3"))
	})

	path, found := r.Path("api.cart.count")
	require.True(t, found)
	assert.Equal(t, "/api/cart/count", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart/count", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Body.String())
}

func TestRoutesListIsSorted(t *testing.T) {
	r := router.New()
	r.Post("/cart/add", "cart.add", ok)
	r.Get("/", "home", ok)
	r.Get("/cart", "cart.show", ok)

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, "/", infos[0].Path)
	assert.Equal(t, "/cart", infos[1].Path)
	assert.Equal(t, "/cart/add", infos[2].Path)
}

func TestRouteMiddlewareApplies(t *testing.T) {
	r := router.New()
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Tagged", "yes")
			next.ServeHTTP(w, req)
		})
	}
	r.Get("/tagged", "tagged", ok, tag)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tagged", nil))
	assert.Equal(t, "yes", rec.Header().Get("X-Tagged"))
}
