package service

import (
	"fmt"

	"TabiRoute-App/internal/domain/model"
)

// CategoryMapper 好みラベルからプロバイダー固有のカテゴリコードへの変換を行う
// マッピングテーブルはプロバイダーごとに差し替え可能
type CategoryMapper struct {
	table map[model.Preference]model.CategoryCode
}

// NewCategoryMapper 任意のマッピングテーブルでCategoryMapperを作成する
func NewCategoryMapper(table map[model.Preference]model.CategoryCode) *CategoryMapper {
	return &CategoryMapper{table: table}
}

// NewGoogleCategoryMapper Google Places用のマッピングテーブルでCategoryMapperを作成する
func NewGoogleCategoryMapper() *CategoryMapper {
	return NewCategoryMapper(map[model.Preference]model.CategoryCode{
		model.PreferenceNature:   "park",
		model.PreferenceFood:     "restaurant",
		model.PreferenceMuseum:   "museum",
		model.PreferenceShopping: "shopping_mall",
		model.PreferenceCafe:     "cafe",
		model.PreferenceLandmark: "tourist_attraction",
	})
}

// NewOpenTripMapCategoryMapper OpenTripMap用のマッピングテーブルでCategoryMapperを作成する
func NewOpenTripMapCategoryMapper() *CategoryMapper {
	return NewCategoryMapper(map[model.Preference]model.CategoryCode{
		model.PreferenceInterestingPlaces: "interesting_places",
		model.PreferenceMuseums:           "museums",
		model.PreferenceParks:             "natural",
		model.PreferenceCultural:          "cultural",
		model.PreferenceFoodRestaurants:   "foods",
	})
}

// MapToCategoryCode 好みラベルをカテゴリコードに変換する
// 列挙外の好みが渡された場合は設定ミスなので ErrInvalidPreference を返す
func (m *CategoryMapper) MapToCategoryCode(pref model.Preference) (model.CategoryCode, error) {
	code, ok := m.table[pref]
	if !ok {
		return "", fmt.Errorf("%w: %s", model.ErrInvalidPreference, pref)
	}
	return code, nil
}

// Contains 好みラベルがこのマッパーの列挙に含まれるかチェック
func (m *CategoryMapper) Contains(pref model.Preference) bool {
	_, ok := m.table[pref]
	return ok
}
