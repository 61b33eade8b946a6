package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// プロバイダー連携プロファイルの定数
const (
	ProviderGoogle      = "google"
	ProviderOpenTripMap = "opentripmap"
)

// デフォルト値
const (
	DefaultPort         = "8080"
	DefaultRadiusMeters = 5000
)

// Config 1回の実行に必要な全ての設定を保持する
// グローバルな可変状態は持たず、起動時に一度だけ組み立ててDIで引き回す
type Config struct {
	Provider          string // "google" または "opentripmap"
	GoogleAPIKey      string // Google Geocoding / Places 用
	WeatherAPIKey     string // OpenWeatherMap 用
	OpenTripMapAPIKey string // OpenTripMap 用
	RadiusMeters      int    // 周辺検索の半径（メートル）
	Port              string // HTTPサーバーのポート
}

// Load 環境変数から設定を読み込む
// 認証情報の検証は Validate で行う（読み込みと検証を分離）
func Load() *Config {
	cfg := &Config{
		Provider:          strings.ToLower(os.Getenv("PLACES_PROVIDER")),
		GoogleAPIKey:      os.Getenv("GOOGLE_API_KEY"),
		WeatherAPIKey:     os.Getenv("WEATHER_API_KEY"),
		OpenTripMapAPIKey: os.Getenv("OPENTRIPMAP_API_KEY"),
		RadiusMeters:      DefaultRadiusMeters,
		Port:              DefaultPort,
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderGoogle
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if radius := os.Getenv("SEARCH_RADIUS_METERS"); radius != "" {
		if r, err := strconv.Atoi(radius); err == nil && r > 0 {
			cfg.RadiusMeters = r
		}
	}
	return cfg
}

// Validate 選択中のプロファイルに必要な認証情報が揃っているか検証する
// 認証情報が欠けている場合はパイプラインを一切開始させない（fail-fast）
func (c *Config) Validate() error {
	var missing []string

	switch c.Provider {
	case ProviderGoogle:
		if c.GoogleAPIKey == "" {
			missing = append(missing, "GOOGLE_API_KEY")
		}
		if c.WeatherAPIKey == "" {
			missing = append(missing, "WEATHER_API_KEY")
		}
	case ProviderOpenTripMap:
		if c.OpenTripMapAPIKey == "" {
			missing = append(missing, "OPENTRIPMAP_API_KEY")
		}
		if c.WeatherAPIKey == "" {
			missing = append(missing, "WEATHER_API_KEY")
		}
	default:
		return fmt.Errorf("対応していないプロバイダーです: %s（google または opentripmap を指定してください）", c.Provider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("環境変数が設定されていません: %s", strings.Join(missing, ", "))
	}
	return nil
}
