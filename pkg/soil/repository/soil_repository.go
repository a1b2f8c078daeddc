package repository

import (
	"time"

	"garden/entities"
)

type SoilRepository interface {
	Create(s *entities.SoilSample) error
	ByGarden(gardenID uint) ([]entities.SoilSample, error)
	Since(gardenID uint, since time.Time) ([]entities.SoilSample, error)
}
