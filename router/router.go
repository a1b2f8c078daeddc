package router

import (
	"github.com/labstack/echo/v4"

	"garden/pkg/middleware"
)

func New(
	e *echo.Echo,
	strictAuth bool,
	gardenCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		CreateZone(echo.Context) error
		CreatePlanting(echo.Context) error
	},
	soilCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	waterCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	advisorCtrl interface {
		SoilSamples(echo.Context) error
		IrrigationSummary(echo.Context) error
		SystemInsights(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	e.Use(middleware.StrictAuth(strictAuth))
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// KB endpoints
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	api.POST("/gardens", gardenCtrl.Create)
	api.GET("/gardens", gardenCtrl.List)
	api.GET("/gardens/:id", gardenCtrl.Get)
	api.POST("/gardens/:id/zones", gardenCtrl.CreateZone)
	api.POST("/gardens/:id/plantings", gardenCtrl.CreatePlanting)

	api.POST("/gardens/:id/soil-samples", soilCtrl.Create)
	api.GET("/gardens/:id/soil-samples", soilCtrl.List)

	api.POST("/gardens/:id/irrigation", waterCtrl.Create)
	api.GET("/gardens/:id/irrigation", waterCtrl.List)

	// Advisory endpoints: recomputed per request, nothing persisted.
	api.GET("/soil-samples", advisorCtrl.SoilSamples)
	api.GET("/irrigation/summary", advisorCtrl.IrrigationSummary)
	api.GET("/irrigation-system/insights", advisorCtrl.SystemInsights)

	return e
}
