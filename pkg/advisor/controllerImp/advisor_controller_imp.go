package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/pkg/advisor/service"
)

type AdvisorCtrl struct{ svc service.AdvisorService }

func New(svc service.AdvisorService) *AdvisorCtrl { return &AdvisorCtrl{svc} }

// The advisory endpoints recompute on every request; nothing here is cached
// or persisted. Evaluation time is taken once per request in UTC.

func (h *AdvisorCtrl) SoilSamples(c echo.Context) error {
	uid := c.Get("uid").(string)
	report, err := h.svc.SoilReport(uid, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}

func (h *AdvisorCtrl) IrrigationSummary(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.IrrigationSummary(uid, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdvisorCtrl) SystemInsights(c echo.Context) error {
	uid := c.Get("uid").(string)
	window := 0
	if v := c.QueryParam("window_days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = n
		}
	}
	report, err := h.svc.SystemInsights(uid, time.Now().UTC(), window)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
