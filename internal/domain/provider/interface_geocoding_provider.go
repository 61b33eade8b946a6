package provider

import (
	"context"

	"TabiRoute-App/internal/domain/model"
)

// GeocodingProvider 都市名から緯度経度を解決する外部プロバイダーのインターフェース
type GeocodingProvider interface {
	// ResolveCity は都市名を緯度経度に解決する
	// 都市が見つからない場合は (nil, nil) を返す（エラーではない）
	ResolveCity(ctx context.Context, city string) (*model.LatLng, error)
}
