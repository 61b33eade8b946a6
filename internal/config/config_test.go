package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("PLACES_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("OPENTRIPMAP_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("SEARCH_RADIUS_METERS", "")
}

func TestConfig_Load(t *testing.T) {
	t.Run("デフォルト値が適用される", func(t *testing.T) {
		clearEnv(t)
		cfg := Load()

		assert.Equal(t, ProviderGoogle, cfg.Provider)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultRadiusMeters, cfg.RadiusMeters)
	})

	t.Run("環境変数で上書きできる", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PLACES_PROVIDER", "OpenTripMap")
		t.Setenv("PORT", "9090")
		t.Setenv("SEARCH_RADIUS_METERS", "3000")
		cfg := Load()

		assert.Equal(t, ProviderOpenTripMap, cfg.Provider, "プロバイダー名は小文字に正規化される")
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 3000, cfg.RadiusMeters)
	})

	t.Run("不正な半径は無視してデフォルトを使う", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SEARCH_RADIUS_METERS", "abc")
		cfg := Load()

		assert.Equal(t, DefaultRadiusMeters, cfg.RadiusMeters)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Googleプロファイルは両方のキーが必要", func(t *testing.T) {
		cfg := &Config{Provider: ProviderGoogle, GoogleAPIKey: "g", WeatherAPIKey: "w"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("認証情報が欠けている場合はエラー", func(t *testing.T) {
		cfg := &Config{Provider: ProviderGoogle, GoogleAPIKey: "g"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WEATHER_API_KEY")
	})

	t.Run("OpenTripMapプロファイルの必須キー", func(t *testing.T) {
		cfg := &Config{Provider: ProviderOpenTripMap, WeatherAPIKey: "w"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENTRIPMAP_API_KEY")

		cfg.OpenTripMapAPIKey = "o"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("未知のプロバイダーはエラー", func(t *testing.T) {
		cfg := &Config{Provider: "foursquare"}
		assert.Error(t, cfg.Validate())
	})
}
