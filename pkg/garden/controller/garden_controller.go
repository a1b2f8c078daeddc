package controller

import "github.com/labstack/echo/v4"

type GardenController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	CreateZone(c echo.Context) error
	CreatePlanting(c echo.Context) error
}
