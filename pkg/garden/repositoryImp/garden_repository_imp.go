package repositoryImp

import (
	"garden/entities"
	"garden/pkg/garden/repository"

	"gorm.io/gorm"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.Garden) error { return r.db.Create(g).Error }

func (r *gardenRepo) FindByID(id uint, uid string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("garden_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) ListByUser(uid string) ([]entities.Garden, error) {
	var out []entities.Garden
	if err := r.db.Where("user_id = ?", uid).Order("garden_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) CreateZone(z *entities.Zone) error { return r.db.Create(z).Error }

func (r *gardenRepo) ZonesByGarden(gardenID uint) ([]entities.Zone, error) {
	var out []entities.Zone
	if err := r.db.Where("garden_id = ?", gardenID).Order("zone_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) CreatePlanting(p *entities.Planting) error { return r.db.Create(p).Error }

func (r *gardenRepo) PlantingsByGarden(gardenID uint) ([]entities.Planting, error) {
	var out []entities.Planting
	if err := r.db.Where("garden_id = ?", gardenID).Order("planting_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
