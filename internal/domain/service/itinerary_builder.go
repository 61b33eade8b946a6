package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"TabiRoute-App/internal/domain/model"
	"TabiRoute-App/internal/domain/provider"
)

// DefaultItineraryCap 1日ルートに含めるスポットの上限数
const DefaultItineraryCap = 5

// UnknownPlaceName スポット名が欠損している場合のプレースホルダー
const UnknownPlaceName = "Unknown"

// MetricUnavailable 評価・距離がどちらも欠損している場合のプレースホルダー
const MetricUnavailable = "N/A"

// ItineraryBuilder スポット候補から表示用の1日ルートを組み立てる
// プロバイダーの返却順を関連度順とみなし、並び替えは行わず先頭から上限数だけ採用する
type ItineraryBuilder struct {
	cap int
}

// NewItineraryBuilder 新しいItineraryBuilderインスタンスを作成する
func NewItineraryBuilder(cap int) *ItineraryBuilder {
	if cap <= 0 {
		cap = DefaultItineraryCap
	}
	return &ItineraryBuilder{cap: cap}
}

// Build 候補リストを上限数まで切り詰め、表示用エントリに正規化する
// detailProvider が指定されている場合はスポットごとに詳細を取得する
// （詳細取得の失敗は画像・説明なしに縮退させ、ルート構築自体は中断しない）
func (b *ItineraryBuilder) Build(ctx context.Context, candidates []*model.CandidatePlace, categoryLabel model.Preference, detailProvider provider.PlaceDetailProvider) []model.ItineraryEntry {
	if len(candidates) == 0 {
		return []model.ItineraryEntry{}
	}

	// 先頭から上限数だけ採用（候補が少ない場合はそのまま全件）
	selected := candidates
	if len(selected) > b.cap {
		selected = selected[:b.cap]
	}

	details := b.fetchDetails(ctx, selected, detailProvider)

	entries := make([]model.ItineraryEntry, 0, len(selected))
	for i, place := range selected {
		entry := model.ItineraryEntry{
			Rank:          i + 1,
			Name:          place.Name,
			Metric:        formatMetric(place),
			Address:       place.Address,
			ImageURL:      place.ImageURL,
			Description:   place.Description,
			CategoryLabel: categoryLabel,
		}
		if entry.Name == "" {
			entry.Name = UnknownPlaceName
		}
		if d := details[i]; d != nil {
			if entry.ImageURL == "" {
				entry.ImageURL = d.ImageURL
			}
			if entry.Description == "" {
				entry.Description = d.Description
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// detailResult 並行詳細取得の結果を格納する
type detailResult struct {
	index  int
	detail *model.PlaceDetail
	err    error
}

// fetchDetails 採用済みスポットの詳細を並行取得し、元の並び順のまま返す
func (b *ItineraryBuilder) fetchDetails(ctx context.Context, selected []*model.CandidatePlace, detailProvider provider.PlaceDetailProvider) []*model.PlaceDetail {
	details := make([]*model.PlaceDetail, len(selected))
	if detailProvider == nil {
		return details
	}

	resultChan := make(chan detailResult, len(selected))
	var wg sync.WaitGroup

	for i, place := range selected {
		wg.Add(1)
		go func(idx int, p *model.CandidatePlace) {
			defer wg.Done()
			detail, err := detailProvider.FetchDetail(ctx, p)
			resultChan <- detailResult{index: idx, detail: detail, err: err}
		}(i, place)
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		if result.err != nil {
			log.Printf("⚠️ スポット%d の詳細取得に失敗、画像・説明なしで続行: %v", result.index+1, result.err)
			continue
		}
		details[result.index] = result.detail
	}
	return details
}

// formatMetric 評価または距離を単位付きの表示文字列に整形する
func formatMetric(place *model.CandidatePlace) string {
	if place.HasRating() {
		return fmt.Sprintf("⭐ %.1f", *place.Rating)
	}
	if place.HasDistance() {
		return fmt.Sprintf("%.0fm", *place.DistanceMeters)
	}
	return MetricUnavailable
}
