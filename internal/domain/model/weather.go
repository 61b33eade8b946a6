package model

// WeatherReading 現在の天気のスナップショット
// Condition はプロバイダーのカテゴリラベル（"Rain", "Clear" など）、
// Description は自由記述（"light rain" など）。プロバイダーによって
// どちらか一方しか埋まらない場合がある
type WeatherReading struct {
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	TempCelsius float64 `json:"temperature_celsius"`
}

// ConditionText ポリシー判定に使うテキストを取得する
// カテゴリラベルを優先し、なければ自由記述を返す
func (w WeatherReading) ConditionText() string {
	if w.Condition != "" {
		return w.Condition
	}
	return w.Description
}
