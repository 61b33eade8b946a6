package opentripmap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TabiRoute-App/internal/domain/model"
)

const defaultBaseURL = "https://api.opentripmap.com/0.1/en"

// GeocodingProvider はOpenTripMap Geoname APIを使用した都市名解決の実装
type GeocodingProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingProvider は新しいプロバイダを生成する
func NewGeocodingProvider(apiKey string) *GeocodingProvider {
	return &GeocodingProvider{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveCity はGeoname APIを呼び出して都市名を緯度経度に解決する
// レスポンスに lat/lon が含まれない場合は都市が見つからなかったとみなし (nil, nil) を返す
func (g *GeocodingProvider) ResolveCity(ctx context.Context, city string) (*model.LatLng, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("apikey", g.apiKey)
	reqURL := fmt.Sprintf("%s/places/geoname?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	// OpenTripMapは未知の都市名に404を返すことがある
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ジオコーディングAPIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp geonameResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	// フラットな lat/lon の存在チェックで解決可否を判定する
	if apiResp.Lat == nil || apiResp.Lon == nil {
		return nil, nil
	}

	return &model.LatLng{Lat: *apiResp.Lat, Lng: *apiResp.Lon}, nil
}

// --- OpenTripMap Geoname APIのレスポンスをパースするための構造体 ---

type geonameResponse struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}
