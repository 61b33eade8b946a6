package model

// RoutePlanRequest 1日ルート提案に必要な全ての条件を保持する
type RoutePlanRequest struct {
	City       string     `json:"city" validate:"required"`       // 必須：目的地の都市名
	Date       string     `json:"date,omitempty"`                 // オプション：旅行日（YYYY-MM-DD、表示用）
	Preference Preference `json:"preference" validate:"required"` // 必須：行動の好み
}

// HasDate 旅行日が指定されているかどうかを判定する
func (r *RoutePlanRequest) HasDate() bool {
	return r.Date != ""
}

// WeatherSummary レスポンスに含める天気の要約
type WeatherSummary struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description,omitempty"`
	TempCelsius float64 `json:"temperature_celsius"`
	IndoorMode  bool    `json:"indoor_mode"`
}

// CategorySummary レスポンスに含めるカテゴリ決定の要約
// Requested はユーザーが選んだ好み、Effective はポリシー適用後の好み
type CategorySummary struct {
	Requested    Preference   `json:"requested"`
	Effective    Preference   `json:"effective"`
	CategoryCode CategoryCode `json:"category_code"`
}

// RoutePlanResponse 1日ルート提案のレスポンス
type RoutePlanResponse struct {
	PlanID    string           `json:"plan_id"`
	City      string           `json:"city"`
	Date      string           `json:"date,omitempty"`
	Weather   WeatherSummary   `json:"weather"`
	Category  CategorySummary  `json:"category"`
	Itinerary []ItineraryEntry `json:"itinerary"`
}
