package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TabiRoute-App/internal/domain/model"
)

func TestPlacesProvider_SearchNearby(t *testing.T) {
	center := model.LatLng{Lat: 48.8566, Lng: 2.3522}

	t.Run("返却順のまま候補に変換される", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "park", r.URL.Query().Get("type"))
			assert.Equal(t, "5000", r.URL.Query().Get("radius"))
			fmt.Fprint(w, `{
				"status": "OK",
				"results": [
					{
						"place_id": "p1",
						"name": "Jardin du Luxembourg",
						"rating": 4.7,
						"vicinity": "Rue de Médicis",
						"geometry": {"location": {"lat": 48.8462, "lng": 2.3372}},
						"photos": [{"photo_reference": "ref-abc"}]
					},
					{
						"place_id": "p2",
						"rating": 4.1,
						"vicinity": "Quai d'Orsay"
					}
				]
			}`)
		}))
		defer server.Close()

		g := NewPlacesProvider("test-key")
		g.baseURL = server.URL

		candidates, err := g.SearchNearby(context.Background(), center, 5000, "park")
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		first := candidates[0]
		assert.Equal(t, "Jardin du Luxembourg", first.Name)
		require.NotNil(t, first.Rating)
		assert.InDelta(t, 4.7, *first.Rating, 0.001)
		assert.Equal(t, "Rue de Médicis", first.Address)
		require.NotNil(t, first.DistanceMeters, "geometryがあれば中心からの距離を計算する")
		assert.Greater(t, *first.DistanceMeters, 0.0)

		// 写真参照からPlace Photo APIのURLが組み立てられる
		assert.True(t, strings.HasPrefix(first.ImageURL, placePhotoBaseURL+"?"))
		assert.Contains(t, first.ImageURL, "photo_reference=ref-abc")
		assert.Contains(t, first.ImageURL, "maxwidth=600")

		second := candidates[1]
		assert.Empty(t, second.Name, "名前の欠損はビルダー側でプレースホルダーに置き換える")
		assert.Empty(t, second.ImageURL, "写真がなければ画像URLも空")
		assert.Nil(t, second.DistanceMeters)
	})

	t.Run("結果が空の場合は空のスライスを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
		}))
		defer server.Close()

		g := NewPlacesProvider("test-key")
		g.baseURL = server.URL

		candidates, err := g.SearchNearby(context.Background(), center, 5000, "cafe")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
