package opentripmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TabiRoute-App/internal/domain/model"
)

// DetailProvider はOpenTripMap Xid APIを使用したスポット詳細取得の実装
// 一覧（Radius API）には画像・説明が含まれないため、スポットごとに1回の追加呼び出しを行う
type DetailProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewDetailProvider は新しいプロバイダを生成する
func NewDetailProvider(apiKey string) *DetailProvider {
	return &DetailProvider{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchDetail はXid APIを呼び出して1スポット分の詳細情報を取得する
func (o *DetailProvider) FetchDetail(ctx context.Context, place *model.CandidatePlace) (*model.PlaceDetail, error) {
	if place == nil || place.ID == "" {
		return nil, errors.New("詳細取得に必要なスポットIDがありません")
	}

	params := url.Values{}
	params.Set("apikey", o.apiKey)
	reqURL := fmt.Sprintf("%s/places/xid/%s?%s", o.baseURL, url.PathEscape(place.ID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("詳細APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("詳細APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp xidResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	detail := &model.PlaceDetail{}
	if apiResp.Preview != nil {
		detail.ImageURL = apiResp.Preview.Source
	}
	if apiResp.WikipediaExtracts != nil {
		detail.Description = apiResp.WikipediaExtracts.Text
	}
	return detail, nil
}

// --- OpenTripMap Xid APIのレスポンスをパースするための構造体 ---

type xidResponse struct {
	Xid               string             `json:"xid"`
	Name              string             `json:"name"`
	Preview           *xidPreview        `json:"preview,omitempty"`
	WikipediaExtracts *wikipediaExtracts `json:"wikipedia_extracts,omitempty"`
}
type xidPreview struct {
	Source string `json:"source"`
}
type wikipediaExtracts struct {
	Text string `json:"text"`
}
