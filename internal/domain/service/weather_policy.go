package service

import (
	"strings"

	"TabiRoute-App/internal/domain/model"
)

// MatchMode 悪天候マーカーの照合方法
type MatchMode int

const (
	// MatchExact カテゴリラベルとの完全一致（大文字小文字は無視）
	MatchExact MatchMode = iota
	// MatchSubstring 自由記述への部分一致（大文字小文字は無視）
	MatchSubstring
)

// WeatherPolicy 天気に応じて屋内モードを判定し、好みの上書きを行うポリシー
// 悪天候マーカー・屋外扱いの好み・屋内の代替はプロバイダーごとの設定とする
type WeatherPolicy struct {
	adverseMarkers []string
	matchMode      MatchMode
	outdoorPrefs   map[model.Preference]struct{}
	indoorDefault  model.Preference
}

// NewWeatherPolicy 任意の設定でWeatherPolicyを作成する
func NewWeatherPolicy(adverseMarkers []string, matchMode MatchMode, outdoorPrefs []model.Preference, indoorDefault model.Preference) *WeatherPolicy {
	outdoorSet := make(map[model.Preference]struct{}, len(outdoorPrefs))
	for _, p := range outdoorPrefs {
		outdoorSet[p] = struct{}{}
	}
	return &WeatherPolicy{
		adverseMarkers: adverseMarkers,
		matchMode:      matchMode,
		outdoorPrefs:   outdoorSet,
		indoorDefault:  indoorDefault,
	}
}

// NewGoogleWeatherPolicy Google/OpenWeatherMap連携用のポリシーを作成する
// OpenWeatherMapのカテゴリラベル（"Rain"など）に完全一致で反応し、
// 屋外扱いの好み（自然・観光名所）のみ博物館に上書きする
func NewGoogleWeatherPolicy() *WeatherPolicy {
	return NewWeatherPolicy(
		[]string{"Rain", "Snow", "Thunderstorm"},
		MatchExact,
		[]model.Preference{model.PreferenceNature, model.PreferenceLandmark},
		model.PreferenceMuseum,
	)
}

// NewOpenTripMapWeatherPolicy OpenTripMap連携用のポリシーを作成する
// 自由記述（"light rain"など）への部分一致で反応し、
// 悪天候時は全ての好みを博物館巡りに上書きする
func NewOpenTripMapWeatherPolicy() *WeatherPolicy {
	return NewWeatherPolicy(
		[]string{"rain", "snow", "thunderstorm"},
		MatchSubstring,
		model.GetOpenTripMapPreferences(),
		model.PreferenceMuseums,
	)
}

// DecideEffectivePreference 天気と希望の好みから、実際に使用する好みと屋内モードを決定する
// 純粋関数であり、天気の取得自体はオーケストレーター側の責務
func (p *WeatherPolicy) DecideEffectivePreference(reading model.WeatherReading, requested model.Preference) (model.Preference, bool) {
	if !p.isAdverse(reading) {
		return requested, false
	}

	// 屋内モード：屋外扱いの好みだけを屋内の代替に上書きする
	if _, outdoor := p.outdoorPrefs[requested]; outdoor {
		return p.indoorDefault, true
	}
	return requested, true
}

// isAdverse 天気が悪天候マーカーに該当するかを判定する
func (p *WeatherPolicy) isAdverse(reading model.WeatherReading) bool {
	condition := strings.ToLower(reading.ConditionText())
	if condition == "" {
		return false
	}

	for _, marker := range p.adverseMarkers {
		m := strings.ToLower(marker)
		switch p.matchMode {
		case MatchSubstring:
			if strings.Contains(condition, m) {
				return true
			}
		default:
			if condition == m {
				return true
			}
		}
	}
	return false
}
