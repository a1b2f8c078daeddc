package repositoryImp

import (
	"time"

	"garden/entities"
	"garden/pkg/water/repository"

	"gorm.io/gorm"
)

type waterRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WaterRepository { return &waterRepo{db} }

func (r *waterRepo) Create(e *entities.IrrigationEvent) error { return r.db.Create(e).Error }

func (r *waterRepo) ByGarden(gardenID uint) ([]entities.IrrigationEvent, error) {
	var out []entities.IrrigationEvent
	if err := r.db.Where("garden_id = ?", gardenID).Order("watered_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *waterRepo) Since(gardenID uint, since time.Time) ([]entities.IrrigationEvent, error) {
	var out []entities.IrrigationEvent
	if err := r.db.Where("garden_id = ? AND watered_at >= ?", gardenID, since).Order("watered_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
