package model

// CandidatePlace プレイスプロバイダーから返される生のスポット候補
// プロバイダーによって埋まるフィールドが異なるため、欠損しうる項目は
// ポインタまたはゼロ値で表現する
type CandidatePlace struct {
	ID             string   `json:"id"`                        // プロバイダー固有のスポットID（詳細取得に使用、欠損可）
	Name           string   `json:"name"`                      // スポット名（欠損可）
	Location       *LatLng  `json:"location,omitempty"`        // 位置情報（欠損可）
	Rating         *float64 `json:"rating,omitempty"`          // 評価値（Google Places、欠損可）
	DistanceMeters *float64 `json:"distance_meters,omitempty"` // 検索中心からの距離（OpenTripMap、欠損可）
	Address        string   `json:"address,omitempty"`         // 住所（欠損可）
	ImageURL       string   `json:"image_url,omitempty"`       // 画像URL（一覧レスポンスに含まれる場合のみ）
	Description    string   `json:"description,omitempty"`     // 説明文（一覧レスポンスに含まれる場合のみ）
}

// HasRating 評価値が設定されているかチェック
func (p *CandidatePlace) HasRating() bool {
	return p.Rating != nil
}

// HasDistance 距離が設定されているかチェック
func (p *CandidatePlace) HasDistance() bool {
	return p.DistanceMeters != nil
}

// PlaceDetail 詳細エンドポイントから取得する追加情報
// 取得失敗は致命的エラーではなく、画像・説明なしとして扱う
type PlaceDetail struct {
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// ItineraryEntry 表示用に正規化されたルートの1スポット
// Rank は最終的な並び順における1始まりの位置で、確定後は変更されない
type ItineraryEntry struct {
	Rank          int        `json:"rank"`
	Name          string     `json:"name"`
	Metric        string     `json:"metric"` // 評価または距離（単位付き）、欠損時は "N/A"
	Address       string     `json:"address,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Description   string     `json:"description,omitempty"`
	CategoryLabel Preference `json:"category_label"`
}
