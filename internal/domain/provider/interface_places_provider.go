package provider

import (
	"context"

	"TabiRoute-App/internal/domain/model"
)

// PlacesProvider 周辺スポットを検索する外部プロバイダーのインターフェース
type PlacesProvider interface {
	// SearchNearby は指定地点・半径・カテゴリコードで周辺スポットを検索する
	// 結果はプロバイダーの関連度順で返す（こちらで並び替えは行わない）
	SearchNearby(ctx context.Context, location model.LatLng, radiusMeters int, category model.CategoryCode) ([]*model.CandidatePlace, error)
}

// PlaceDetailProvider スポットごとの詳細情報（画像・説明）を取得するインターフェース
// 一覧と詳細のエンドポイントが分かれているプロバイダー（OpenTripMapなど）のみ実装する
type PlaceDetailProvider interface {
	// FetchDetail は1スポット分の詳細情報を取得する
	FetchDetail(ctx context.Context, place *model.CandidatePlace) (*model.PlaceDetail, error)
}
