package provider

import (
	"context"

	"TabiRoute-App/internal/domain/model"
)

// WeatherProvider 指定地点の現在の天気を取得する外部プロバイダーのインターフェース
type WeatherProvider interface {
	// CurrentWeather は指定地点の現在の天気スナップショットを取得する
	CurrentWeather(ctx context.Context, location model.LatLng) (*model.WeatherReading, error)
}
