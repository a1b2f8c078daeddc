package controller

import "github.com/labstack/echo/v4"

type AdvisorController interface {
	SoilSamples(c echo.Context) error
	IrrigationSummary(c echo.Context) error
	SystemInsights(c echo.Context) error
}
