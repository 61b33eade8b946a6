package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"TabiRoute-App/internal/domain/model"
)

// DistanceMeters 2地点間の距離を計算する (メートル)
func DistanceMeters(p1, p2 model.LatLng) float64 {
	// orb.Point は [経度, 緯度] の順
	a := orb.Point{p1.Lng, p1.Lat}
	b := orb.Point{p2.Lng, p2.Lat}
	return geo.Distance(a, b)
}

// DistanceFromCenter 検索中心からスポットまでの距離を計算する (メートル)
// スポットに位置情報がない場合は nil を返す
func DistanceFromCenter(center model.LatLng, place *model.CandidatePlace) *float64 {
	if place == nil || place.Location == nil {
		return nil
	}
	d := DistanceMeters(center, *place.Location)
	return &d
}
