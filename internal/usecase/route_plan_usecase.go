package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"TabiRoute-App/internal/domain/model"
	"TabiRoute-App/internal/domain/provider"
	"TabiRoute-App/internal/domain/service"
)

// RoutePlanUseCase 1日ルート提案のパイプライン全体を統括するユースケース
type RoutePlanUseCase interface {
	// PlanRoute はリクエストに基づいて1日ルートを生成する
	// ジオコーディング → 天気 → ポリシー判定 → カテゴリ変換 → スポット検索 → ルート構築 の順で
	// 直列に実行し、最初の失敗でその実行を終了する（リトライ・部分結果なし）
	PlanRoute(ctx context.Context, req *model.RoutePlanRequest) (*model.RoutePlanResponse, error)
}

// routePlanUseCaseImpl はRoutePlanUseCaseの実装
type routePlanUseCaseImpl struct {
	geocoder       provider.GeocodingProvider
	weather        provider.WeatherProvider
	places         provider.PlacesProvider
	detail         provider.PlaceDetailProvider // 詳細エンドポイントがないプロバイダーではnil
	weatherPolicy  *service.WeatherPolicy
	categoryMapper *service.CategoryMapper
	builder        *service.ItineraryBuilder
	radiusMeters   int
}

// NewRoutePlanUseCase は新しいRoutePlanUseCaseインスタンスを作成
func NewRoutePlanUseCase(
	geocoder provider.GeocodingProvider,
	weather provider.WeatherProvider,
	places provider.PlacesProvider,
	detail provider.PlaceDetailProvider,
	weatherPolicy *service.WeatherPolicy,
	categoryMapper *service.CategoryMapper,
	builder *service.ItineraryBuilder,
	radiusMeters int,
) RoutePlanUseCase {
	return &routePlanUseCaseImpl{
		geocoder:       geocoder,
		weather:        weather,
		places:         places,
		detail:         detail,
		weatherPolicy:  weatherPolicy,
		categoryMapper: categoryMapper,
		builder:        builder,
		radiusMeters:   radiusMeters,
	}
}

// PlanRoute はリクエストに基づいて1日ルートを生成する
func (u *routePlanUseCaseImpl) PlanRoute(ctx context.Context, req *model.RoutePlanRequest) (*model.RoutePlanResponse, error) {
	if req == nil || strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("%w: 都市名", model.ErrMissingInput)
	}

	log.Printf("🚀 ルート提案開始 (都市: %s, 好み: %s)", req.City, model.GetPreferenceJapaneseName(req.Preference))

	// Step 1: 都市名を緯度経度に解決
	coords, err := u.geocoder.ResolveCity(ctx, req.City)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングに失敗: %w", err)
	}
	if coords == nil {
		log.Printf("❌ 都市が見つかりません: %s", req.City)
		return nil, fmt.Errorf("%w: %s", model.ErrCityNotFound, req.City)
	}
	log.Printf("📍 座標解決完了 (%f, %f)", coords.Lat, coords.Lng)

	// Step 2: 現在の天気を取得
	reading, err := u.weather.CurrentWeather(ctx, *coords)
	if err != nil {
		return nil, fmt.Errorf("天気の取得に失敗: %w", err)
	}
	log.Printf("🌤 天気取得完了 (状態: %s, 気温: %.1f°C)", reading.ConditionText(), reading.TempCelsius)

	// Step 3: 屋内モードの判定と好みの上書き
	effective, indoorMode := u.weatherPolicy.DecideEffectivePreference(*reading, req.Preference)
	if indoorMode {
		log.Printf("☔ 屋内モード有効 (好み: %s → %s)",
			model.GetPreferenceJapaneseName(req.Preference), model.GetPreferenceJapaneseName(effective))
	}

	// Step 4: 好みをカテゴリコードに変換
	categoryCode, err := u.categoryMapper.MapToCategoryCode(effective)
	if err != nil {
		return nil, fmt.Errorf("カテゴリ変換に失敗: %w", err)
	}

	// Step 5: 周辺スポットを検索
	candidates, err := u.places.SearchNearby(ctx, *coords, u.radiusMeters, categoryCode)
	if err != nil {
		return nil, fmt.Errorf("スポット検索に失敗: %w", err)
	}
	if len(candidates) == 0 {
		log.Printf("❌ カテゴリ '%s' でスポットが見つかりません", categoryCode)
		return nil, fmt.Errorf("%w (カテゴリ: %s)", model.ErrNoCandidatesFound, categoryCode)
	}
	log.Printf("🔍 %d件のスポット候補を取得", len(candidates))

	// Step 6: 表示用の1日ルートを構築
	itinerary := u.builder.Build(ctx, candidates, effective, u.detail)
	log.Printf("🎉 ルート提案完了 (%d件)", len(itinerary))

	return &model.RoutePlanResponse{
		PlanID: uuid.New().String(),
		City:   req.City,
		Date:   req.Date,
		Weather: model.WeatherSummary{
			Condition:   reading.Condition,
			Description: reading.Description,
			TempCelsius: reading.TempCelsius,
			IndoorMode:  indoorMode,
		},
		Category: model.CategorySummary{
			Requested:    req.Preference,
			Effective:    effective,
			CategoryCode: categoryCode,
		},
		Itinerary: itinerary,
	}, nil
}
