package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"garden/pkg/reference"
)

var appStart = time.Now()

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type HealthCtrl struct {
	db       *gorm.DB
	profiles *reference.Table
}

func NewHealthCtrl(db *gorm.DB, profiles *reference.Table) *HealthCtrl {
	return &HealthCtrl{db: db, profiles: profiles}
}

// Health reports whether the service can answer advisory requests: the
// database must respond to a ping and the plant profile table must have
// loaded. Either failing returns 503.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	profiles := check{OK: true}
	if h.profiles == nil {
		profiles = check{Err: "profile table not loaded"}
	} else if !h.profiles.Known(reference.DefaultName) {
		profiles = check{Err: "profile table has no default profile"}
	}

	ok := db.OK && profiles.OK
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         ok,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
		"checks": map[string]check{
			"database": db,
			"profiles": profiles,
		},
	})
}
