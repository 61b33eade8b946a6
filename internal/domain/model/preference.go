package model

// Preference ユーザーが選択する行動の好みを表すラベル
type Preference string

// CategoryCode プレイスプロバイダー固有のカテゴリコード
type CategoryCode string

// PreferenceConstants Google Places連携で使用する好みの定数
const (
	PreferenceNature   Preference = "Nature"
	PreferenceFood     Preference = "Food"
	PreferenceMuseum   Preference = "Museum"
	PreferenceShopping Preference = "Shopping"
	PreferenceCafe     Preference = "Café"
	PreferenceLandmark Preference = "Landmark"
)

// OpenTripMap連携で使用する好みの定数
const (
	PreferenceInterestingPlaces Preference = "Interesting Places"
	PreferenceMuseums           Preference = "Museums"
	PreferenceParks             Preference = "Parks"
	PreferenceCultural          Preference = "Cultural"
	PreferenceFoodRestaurants   Preference = "Food/Restaurants"
)

// PreferenceNameMap 好みラベルから日本語名へのマッピング（ログ表示用）
var PreferenceNameMap = map[Preference]string{
	PreferenceNature:            "自然",
	PreferenceFood:              "グルメ",
	PreferenceMuseum:            "博物館",
	PreferenceShopping:          "ショッピング",
	PreferenceCafe:              "カフェ",
	PreferenceLandmark:          "観光名所",
	PreferenceInterestingPlaces: "興味スポット",
	PreferenceMuseums:           "博物館巡り",
	PreferenceParks:             "公園",
	PreferenceCultural:          "文化",
	PreferenceFoodRestaurants:   "飲食店",
}

// GetPreferenceJapaneseName 好みラベルから日本語名を取得する
func GetPreferenceJapaneseName(pref Preference) string {
	if name, ok := PreferenceNameMap[pref]; ok {
		return name
	}
	return string(pref) // デフォルトはそのまま返す
}

// GetGooglePreferences Google Places連携で選択可能な好み一覧を取得する
func GetGooglePreferences() []Preference {
	return []Preference{
		PreferenceNature,
		PreferenceFood,
		PreferenceMuseum,
		PreferenceShopping,
		PreferenceCafe,
		PreferenceLandmark,
	}
}

// GetOpenTripMapPreferences OpenTripMap連携で選択可能な好み一覧を取得する
func GetOpenTripMapPreferences() []Preference {
	return []Preference{
		PreferenceInterestingPlaces,
		PreferenceMuseums,
		PreferenceParks,
		PreferenceCultural,
		PreferenceFoodRestaurants,
	}
}
