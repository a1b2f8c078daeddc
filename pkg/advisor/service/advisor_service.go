package service

import (
	"time"

	"garden/pkg/advisor/types"
)

type AdvisorService interface {
	SoilReport(uid string, now time.Time) (*types.SoilReport, error)
	IrrigationSummary(uid string, now time.Time) (*types.IrrigationSummary, error)
	SystemInsights(uid string, now time.Time, windowDays int) (*types.InsightReport, error)
}
