package openweather

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

const currentWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherProvider はOpenWeatherMap Current Weather APIを使用した天気取得の実装
type WeatherProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherProvider は新しいプロバイダを生成する
func NewWeatherProvider(apiKey string) *WeatherProvider {
	return &WeatherProvider{
		apiKey:     apiKey,
		baseURL:    currentWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CurrentWeather はOpenWeatherMap APIを呼び出して現在の天気を取得する
func (w *WeatherProvider) CurrentWeather(ctx context.Context, location model.LatLng) (*model.WeatherReading, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", location.Lat))
	params.Set("lon", fmt.Sprintf("%f", location.Lng))
	params.Set("appid", w.apiKey)
	params.Set("units", "metric")
	reqURL := fmt.Sprintf("%s?%s", w.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("天気APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("天気APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Weather) == 0 {
		return nil, errors.New("APIから有効な天気情報が返されませんでした")
	}

	return &model.WeatherReading{
		Condition:   apiResp.Weather[0].Main,
		Description: apiResp.Weather[0].Description,
		TempCelsius: apiResp.Main.Temp,
	}, nil
}

// --- OpenWeatherMap APIのレスポンスをパースするための構造体 ---

type currentWeatherResponse struct {
	Weather []weatherCondition `json:"weather"`
	Main    weatherMain        `json:"main"`
}
type weatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}
type weatherMain struct {
	Temp float64 `json:"temp"`
}
