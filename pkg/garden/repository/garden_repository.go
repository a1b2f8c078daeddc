package repository

import "garden/entities"

type GardenRepository interface {
	Create(g *entities.Garden) error
	FindByID(id uint, uid string) (*entities.Garden, error)
	ListByUser(uid string) ([]entities.Garden, error)

	CreateZone(z *entities.Zone) error
	ZonesByGarden(gardenID uint) ([]entities.Zone, error)

	CreatePlanting(p *entities.Planting) error
	PlantingsByGarden(gardenID uint) ([]entities.Planting, error)
}
