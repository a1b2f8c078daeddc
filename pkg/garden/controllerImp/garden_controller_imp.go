package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/garden/repository"
)

var soilTypes = map[string]bool{
	"sandy": true, "silt": true, "loam": true, "clay": true,
}

type GardenCtrl struct{ repo repository.GardenRepository }

func New(repo repository.GardenRepository) *GardenCtrl { return &GardenCtrl{repo} }

type createReq struct {
	Name     string  `json:"name"`
	SoilType string  `json:"soil_type"`
	SizeSqFt float64 `json:"size_sqft"`
	Notes    string  `json:"notes"`
}

func (h *GardenCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name required"})
	}
	if req.SoilType != "" && !soilTypes[req.SoilType] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown soil_type"})
	}
	g := &entities.Garden{UserID: uid, Name: req.Name, SoilType: req.SoilType, SizeSqFt: req.SizeSqFt, Notes: req.Notes}
	if err := h.repo.Create(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	zones, _ := h.repo.ZonesByGarden(g.GardenID)
	plantings, _ := h.repo.PlantingsByGarden(g.GardenID)
	return c.JSON(http.StatusOK, map[string]any{"garden": g, "zones": zones, "plantings": plantings})
}

func (h *GardenCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type zoneReq struct {
	Name             string `json:"name"`
	SoilType         string `json:"soil_type"` // overrides the garden soil type when set
	IrrigationMethod string `json:"irrigation_method"`
}

func (h *GardenCtrl) CreateZone(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req zoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.SoilType != "" && !soilTypes[req.SoilType] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown soil_type"})
	}
	z := &entities.Zone{GardenID: uint(id), Name: req.Name, SoilType: req.SoilType, IrrigationMethod: req.IrrigationMethod}
	if err := h.repo.CreateZone(z); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, z)
}

type plantingReq struct {
	ZoneID      *uint  `json:"zone_id"`
	PlantName   string `json:"plant_name"`
	Variety     string `json:"variety"`
	Quantity    int    `json:"quantity"`
	PlantedDate string `json:"planted_date"`
}

func (h *GardenCtrl) CreatePlanting(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req plantingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.PlantName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "plant_name required"})
	}
	pd := time.Now()
	if req.PlantedDate != "" {
		if dd, err := time.Parse("2006-01-02", req.PlantedDate); err == nil {
			pd = dd
		}
	}
	p := &entities.Planting{GardenID: uint(id), ZoneID: req.ZoneID, PlantName: req.PlantName, Variety: req.Variety, Quantity: req.Quantity, PlantedDate: pd}
	if err := h.repo.CreatePlanting(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}
