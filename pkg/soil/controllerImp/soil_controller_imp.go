package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/entities"
	gardenrepo "garden/pkg/garden/repository"
	"garden/pkg/soil/repository"
)

type SoilCtrl struct {
	repo    repository.SoilRepository
	gardens gardenrepo.GardenRepository
}

func New(repo repository.SoilRepository, gardens gardenrepo.GardenRepository) *SoilCtrl {
	return &SoilCtrl{repo: repo, gardens: gardens}
}

type sampleReq struct {
	PlantingID       *uint    `json:"planting_id"`
	PH               *float64 `json:"ph"` // required; a pointer so absence is not mistaken for 0.0
	NitrogenPPM      *float64 `json:"nitrogen_ppm"`
	PhosphorusPPM    *float64 `json:"phosphorus_ppm"`
	PotassiumPPM     *float64 `json:"potassium_ppm"`
	OrganicMatterPct *float64 `json:"organic_matter_percent"`
	MoisturePct      *float64 `json:"moisture_percent"`
	DateCollected    string   `json:"date_collected"`
	Note             string   `json:"note"`
}

// validateRanges is the upstream gate: out-of-domain readings never reach the
// evaluator.
func validateRanges(req sampleReq) string {
	if req.PH == nil {
		return "ph required"
	}
	if *req.PH < 0 || *req.PH > 14 {
		return "ph must be within [0,14]"
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"nitrogen_ppm", req.NitrogenPPM}, {"phosphorus_ppm", req.PhosphorusPPM}, {"potassium_ppm", req.PotassiumPPM}} {
		if f.v != nil && *f.v < 0 {
			return f.name + " must be >= 0"
		}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"organic_matter_percent", req.OrganicMatterPct}, {"moisture_percent", req.MoisturePct}} {
		if f.v != nil && (*f.v < 0 || *f.v > 100) {
			return f.name + " must be within [0,100]"
		}
	}
	return ""
}

func (h *SoilCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	gid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.gardens.FindByID(uint(gid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req sampleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := validateRanges(req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	d := time.Now()
	if req.DateCollected != "" {
		if dd, err := time.Parse("2006-01-02", req.DateCollected); err == nil {
			d = dd
		}
	}
	s := &entities.SoilSample{
		GardenID:         uint(gid),
		PlantingID:       req.PlantingID,
		PH:               *req.PH,
		NitrogenPPM:      req.NitrogenPPM,
		PhosphorusPPM:    req.PhosphorusPPM,
		PotassiumPPM:     req.PotassiumPPM,
		OrganicMatterPct: req.OrganicMatterPct,
		MoisturePct:      req.MoisturePct,
		DateCollected:    d,
		Note:             req.Note,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SoilCtrl) List(c echo.Context) error {
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
