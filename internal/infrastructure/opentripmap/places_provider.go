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

// searchLimit Radius APIに要求する最大件数
// ルートの上限より多めに取得し、切り詰めはItineraryBuilder側で行う
const searchLimit = 20

// PlacesProvider はOpenTripMap Radius APIを使用した周辺スポット検索の実装
type PlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesProvider は新しいプロバイダを生成する
func NewPlacesProvider(apiKey string) *PlacesProvider {
	return &PlacesProvider{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchNearby はRadius APIを呼び出して周辺スポットを検索する
// rate=2で一定の評価があるスポットに絞り、APIの返却順のまま返す
func (o *PlacesProvider) SearchNearby(ctx context.Context, location model.LatLng, radiusMeters int, category model.CategoryCode) ([]*model.CandidatePlace, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", location.Lat))
	params.Set("lon", fmt.Sprintf("%f", location.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("kinds", string(category))
	params.Set("rate", "2")
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", searchLimit))
	params.Set("apikey", o.apiKey)
	reqURL := fmt.Sprintf("%s/places/radius?%s", o.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("スポット検索APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("スポット検索APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp []radiusPlace
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	candidates := make([]*model.CandidatePlace, 0, len(apiResp))
	for _, r := range apiResp {
		candidate := &model.CandidatePlace{
			ID:             r.Xid,
			Name:           r.Name,
			DistanceMeters: r.Dist,
		}
		if r.Point != nil {
			candidate.Location = &model.LatLng{Lat: r.Point.Lat, Lng: r.Point.Lon}
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// --- OpenTripMap Radius APIのレスポンスをパースするための構造体 ---

type radiusPlace struct {
	Xid   string       `json:"xid"`
	Name  string       `json:"name"`
	Dist  *float64     `json:"dist,omitempty"`
	Rate  int          `json:"rate"`
	Kinds string       `json:"kinds"`
	Point *radiusPoint `json:"point,omitempty"`
}
type radiusPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
