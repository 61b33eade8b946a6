package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TabiRoute-App/internal/domain/model"
)

func TestCategoryMapper_GoogleMapping(t *testing.T) {
	mapper := NewGoogleCategoryMapper()

	t.Run("全ての好みが空でないコードに変換される", func(t *testing.T) {
		expected := map[model.Preference]model.CategoryCode{
			model.PreferenceNature:   "park",
			model.PreferenceFood:     "restaurant",
			model.PreferenceMuseum:   "museum",
			model.PreferenceShopping: "shopping_mall",
			model.PreferenceCafe:     "cafe",
			model.PreferenceLandmark: "tourist_attraction",
		}

		for _, pref := range model.GetGooglePreferences() {
			code, err := mapper.MapToCategoryCode(pref)
			require.NoError(t, err, "好み %s の変換に失敗", pref)
			assert.NotEmpty(t, code)
			assert.Equal(t, expected[pref], code)
		}
	})

	t.Run("列挙外の好みはErrInvalidPreference", func(t *testing.T) {
		_, err := mapper.MapToCategoryCode("Karaoke")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidPreference))
	})

	t.Run("別プロバイダーの好みもErrInvalidPreference", func(t *testing.T) {
		_, err := mapper.MapToCategoryCode(model.PreferenceMuseums)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidPreference))
	})
}

func TestCategoryMapper_OpenTripMapMapping(t *testing.T) {
	mapper := NewOpenTripMapCategoryMapper()

	t.Run("全ての好みが空でないコードに変換される", func(t *testing.T) {
		expected := map[model.Preference]model.CategoryCode{
			model.PreferenceInterestingPlaces: "interesting_places",
			model.PreferenceMuseums:           "museums",
			model.PreferenceParks:             "natural",
			model.PreferenceCultural:          "cultural",
			model.PreferenceFoodRestaurants:   "foods",
		}

		for _, pref := range model.GetOpenTripMapPreferences() {
			code, err := mapper.MapToCategoryCode(pref)
			require.NoError(t, err, "好み %s の変換に失敗", pref)
			assert.NotEmpty(t, code)
			assert.Equal(t, expected[pref], code)
		}
	})

	t.Run("空文字の好みはErrInvalidPreference", func(t *testing.T) {
		_, err := mapper.MapToCategoryCode("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidPreference))
	})
}

func TestCategoryMapper_Contains(t *testing.T) {
	mapper := NewGoogleCategoryMapper()

	assert.True(t, mapper.Contains(model.PreferenceCafe))
	assert.False(t, mapper.Contains("Karaoke"))
}
