package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TabiRoute-App/internal/domain/model"
)

const geocodingBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GeocodingProvider はGoogle Geocoding APIを使用した都市名解決の実装
type GeocodingProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingProvider は新しいプロバイダを生成する
func NewGeocodingProvider(apiKey string) *GeocodingProvider {
	return &GeocodingProvider{
		apiKey:     apiKey,
		baseURL:    geocodingBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveCity はGoogle Geocoding APIを呼び出して都市名を緯度経度に解決する
// 結果が空の場合は (nil, nil) を返す（都市が存在しないのはエラーではない）
func (g *GeocodingProvider) ResolveCity(ctx context.Context, city string) (*model.LatLng, error) {
	params := url.Values{}
	params.Set("address", city)
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ジオコーディングAPIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Results) == 0 {
		return nil, nil
	}

	loc := apiResp.Results[0].Geometry.Location
	return &model.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// --- Google Geocoding APIのレスポンスをパースするための構造体 ---

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}
type geocodeResult struct {
	Geometry geocodeGeometry `json:"geometry"`
}
type geocodeGeometry struct {
	Location geocodeLocation `json:"location"`
}
type geocodeLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
