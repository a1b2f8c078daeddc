package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/entities"
	gardenrepo "garden/pkg/garden/repository"
	"garden/pkg/water/repository"
)

var methods = map[string]bool{
	"drip": true, "sprinkler": true, "hand_watering": true,
	"soaker_hose": true, "flood": true, "misting": true,
}

type WaterCtrl struct {
	repo    repository.WaterRepository
	gardens gardenrepo.GardenRepository
}

func New(repo repository.WaterRepository, gardens gardenrepo.GardenRepository) *WaterCtrl {
	return &WaterCtrl{repo: repo, gardens: gardens}
}

type eventReq struct {
	ZoneID       *uint    `json:"zone_id"`
	PlantingID   *uint    `json:"planting_id"`
	WateredAt    string   `json:"watered_at"`
	WaterVolumeL *float64 `json:"water_volume_liters"`
	Method       string   `json:"irrigation_method"`
	DurationMin  *int     `json:"duration_minutes"`
	Note         string   `json:"note"`
}

func (h *WaterCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	gid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.gardens.FindByID(uint(gid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Method != "" && !methods[req.Method] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown irrigation_method"})
	}
	if req.WaterVolumeL != nil && *req.WaterVolumeL < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "water_volume_liters must be >= 0"})
	}
	if req.DurationMin != nil && *req.DurationMin < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "duration_minutes must be >= 0"})
	}
	now := time.Now()
	at := now
	if req.WateredAt != "" {
		if t, err := time.Parse(time.RFC3339, req.WateredAt); err == nil {
			at = t
		} else if d, err := time.Parse("2006-01-02", req.WateredAt); err == nil {
			at = d
		}
	}
	// A watering cannot be logged before it happened; downstream schedule math
	// assumes events are in the past.
	if at.After(now) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "watered_at must not be in the future"})
	}
	e := &entities.IrrigationEvent{
		GardenID:     uint(gid),
		ZoneID:       req.ZoneID,
		PlantingID:   req.PlantingID,
		WateredAt:    at,
		WaterVolumeL: req.WaterVolumeL,
		Method:       req.Method,
		DurationMin:  req.DurationMin,
		Note:         req.Note,
	}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *WaterCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	gid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.gardens.FindByID(uint(gid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	out, err := h.repo.ByGarden(uint(gid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
