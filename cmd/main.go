package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TabiRoute-App/internal/config"
	"TabiRoute-App/internal/domain/model"
	"TabiRoute-App/internal/domain/provider"
	"TabiRoute-App/internal/domain/service"
	"TabiRoute-App/internal/handler"
	"TabiRoute-App/internal/infrastructure/googlemaps"
	"TabiRoute-App/internal/infrastructure/openweather"
	"TabiRoute-App/internal/infrastructure/opentripmap"
	"TabiRoute-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println(err.Error())
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Printf("Initializing providers (profile: %s)...\n", cfg.Provider)
	planUseCase, preferences := buildPipeline(cfg)

	// ルーティングの設定
	r := gin.Default()
	planHandler := handler.NewRoutePlanHandler(planUseCase, preferences)
	r.POST("/api/routes/plan", planHandler.PostRoutePlan)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "TabiRoute-App"})
	})

	fmt.Printf("TabiRoute-App server starting on :%s...\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}

// buildPipeline は選択中のプロファイルに応じてプロバイダー群とユースケースを組み立てる
// アダプタの差し替えはここで完結し、ポリシー・マッパー・ビルダー側には影響しない
func buildPipeline(cfg *config.Config) (usecase.RoutePlanUseCase, []model.Preference) {
	var (
		geocoder      provider.GeocodingProvider
		weather       provider.WeatherProvider
		places        provider.PlacesProvider
		detail        provider.PlaceDetailProvider
		weatherPolicy *service.WeatherPolicy
		mapper        *service.CategoryMapper
		preferences   []model.Preference
	)

	switch cfg.Provider {
	case config.ProviderOpenTripMap:
		geocoder = opentripmap.NewGeocodingProvider(cfg.OpenTripMapAPIKey)
		weather = openweather.NewWeatherProvider(cfg.WeatherAPIKey)
		places = opentripmap.NewPlacesProvider(cfg.OpenTripMapAPIKey)
		detail = opentripmap.NewDetailProvider(cfg.OpenTripMapAPIKey)
		weatherPolicy = service.NewOpenTripMapWeatherPolicy()
		mapper = service.NewOpenTripMapCategoryMapper()
		preferences = model.GetOpenTripMapPreferences()
	default:
		geocoder = googlemaps.NewGeocodingProvider(cfg.GoogleAPIKey)
		weather = openweather.NewWeatherProvider(cfg.WeatherAPIKey)
		places = googlemaps.NewPlacesProvider(cfg.GoogleAPIKey)
		detail = nil // Google Placesは一覧レスポンスに画像・住所が含まれる
		weatherPolicy = service.NewGoogleWeatherPolicy()
		mapper = service.NewGoogleCategoryMapper()
		preferences = model.GetGooglePreferences()
	}

	builder := service.NewItineraryBuilder(service.DefaultItineraryCap)
	planUseCase := usecase.NewRoutePlanUseCase(geocoder, weather, places, detail, weatherPolicy, mapper, builder, cfg.RadiusMeters)
	return planUseCase, preferences
}
