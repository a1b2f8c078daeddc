package repositoryImp

import (
	"time"

	"garden/entities"
	"garden/pkg/soil/repository"

	"gorm.io/gorm"
)

type soilRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilRepository { return &soilRepo{db} }

func (r *soilRepo) Create(s *entities.SoilSample) error { return r.db.Create(s).Error }

func (r *soilRepo) ByGarden(gardenID uint) ([]entities.SoilSample, error) {
	var out []entities.SoilSample
	if err := r.db.Where("garden_id = ?", gardenID).Order("date_collected ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *soilRepo) Since(gardenID uint, since time.Time) ([]entities.SoilSample, error) {
	var out []entities.SoilSample
	if err := r.db.Where("garden_id = ? AND date_collected >= ?", gardenID, since).Order("date_collected ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
