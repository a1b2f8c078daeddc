package repository

import (
	"time"

	"garden/entities"
)

type WaterRepository interface {
	Create(e *entities.IrrigationEvent) error
	ByGarden(gardenID uint) ([]entities.IrrigationEvent, error)
	Since(gardenID uint, since time.Time) ([]entities.IrrigationEvent, error)
}
