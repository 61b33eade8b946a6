package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TabiRoute-App/internal/domain/helper"
	"TabiRoute-App/internal/domain/model"
)

const (
	nearbySearchBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	placePhotoBaseURL   = "https://maps.googleapis.com/maps/api/place/photo"
	photoMaxWidth       = 600
)

// PlacesProvider はGoogle Places Nearby Search APIを使用した周辺スポット検索の実装
type PlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesProvider は新しいプロバイダを生成する
func NewPlacesProvider(apiKey string) *PlacesProvider {
	return &PlacesProvider{
		apiKey:     apiKey,
		baseURL:    nearbySearchBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchNearby はNearby Search APIを呼び出して周辺スポットを検索する
// 結果はAPIの返却順（関連度順）のまま返す
func (g *PlacesProvider) SearchNearby(ctx context.Context, location model.LatLng, radiusMeters int, category model.CategoryCode) ([]*model.CandidatePlace, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", string(category))
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Places APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Places APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	candidates := make([]*model.CandidatePlace, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		candidates = append(candidates, g.toCandidate(location, r))
	}
	return candidates, nil
}

// toCandidate APIレスポンスの1件をドメインモデルに変換する
func (g *PlacesProvider) toCandidate(center model.LatLng, r nearbyPlace) *model.CandidatePlace {
	candidate := &model.CandidatePlace{
		ID:      r.PlaceID,
		Name:    r.Name,
		Rating:  r.Rating,
		Address: r.Vicinity,
	}

	if r.Geometry != nil {
		loc := model.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
		candidate.Location = &loc
		candidate.DistanceMeters = helper.DistanceFromCenter(center, candidate)
	}

	// 写真参照がある場合はPlace Photo APIのURLを組み立てる
	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		candidate.ImageURL = g.buildPhotoURL(r.Photos[0].PhotoReference)
	}
	return candidate
}

// buildPhotoURL 写真参照からPlace Photo APIのURLを組み立てる
func (g *PlacesProvider) buildPhotoURL(photoRef string) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprintf("%d", photoMaxWidth))
	params.Set("photo_reference", photoRef)
	params.Set("key", g.apiKey)
	return fmt.Sprintf("%s?%s", placePhotoBaseURL, params.Encode())
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type nearbySearchResponse struct {
	Results []nearbyPlace `json:"results"`
	Status  string        `json:"status"`
}
type nearbyPlace struct {
	PlaceID  string          `json:"place_id"`
	Name     string          `json:"name"`
	Rating   *float64        `json:"rating,omitempty"`
	Vicinity string          `json:"vicinity"`
	Geometry *nearbyGeometry `json:"geometry,omitempty"`
	Photos   []nearbyPhoto   `json:"photos,omitempty"`
}
type nearbyGeometry struct {
	Location geocodeLocation `json:"location"`
}
type nearbyPhoto struct {
	PhotoReference string `json:"photo_reference"`
}
