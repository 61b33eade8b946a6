package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodingProvider_ResolveCity(t *testing.T) {
	t.Run("results[0].geometry.locationから座標を取り出す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Paris", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{"geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}},
					{"geometry": {"location": {"lat": 0, "lng": 0}}}
				]
			}`)
		}))
		defer server.Close()

		g := NewGeocodingProvider("test-key")
		g.baseURL = server.URL

		coords, err := g.ResolveCity(context.Background(), "Paris")
		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InDelta(t, 48.8566, coords.Lat, 0.0001)
		assert.InDelta(t, 2.3522, coords.Lng, 0.0001)
	})

	t.Run("結果が空の場合はエラーではなくnilを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
		}))
		defer server.Close()

		g := NewGeocodingProvider("test-key")
		g.baseURL = server.URL

		coords, err := g.ResolveCity(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("エラーステータスはエラーとして返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		g := NewGeocodingProvider("bad-key")
		g.baseURL = server.URL

		_, err := g.ResolveCity(context.Background(), "Paris")
		assert.Error(t, err)
	})
}
