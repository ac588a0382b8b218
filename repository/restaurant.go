package repository

import (
	"context"

	"foodapp-api/models"

	"gorm.io/gorm"
)

// RestaurantRepository reads the static catalogue. A nil country means unscoped.
type RestaurantRepository interface {
	List(ctx context.Context, country *models.Country) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id uint, country *models.Country) (*models.Restaurant, error)
	FindMenuItems(ctx context.Context, ids []uint) ([]models.MenuItem, error)
}

type restaurantRepoImpl struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepoImpl{db: db}
}

func scoped(db *gorm.DB, country *models.Country) *gorm.DB {
	if country != nil {
		return db.Where("country = ?", *country)
	}
	return db
}

func withMenu(db *gorm.DB) *gorm.DB {
	return db.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_items.id")
	})
}

func (r *restaurantRepoImpl) List(ctx context.Context, country *models.Country) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := withMenu(scoped(r.db.WithContext(ctx), country)).
		Order("id").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepoImpl) FindByID(ctx context.Context, id uint, country *models.Country) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := withMenu(scoped(r.db.WithContext(ctx), country)).
		Where("id = ?", id).
		First(&restaurant).Error
	if err != nil {
		return nil, notFound(err, "Restaurant not found")
	}
	return &restaurant, nil
}

// FindMenuItems loads the requested items with their restaurant. Unknown ids are skipped.
func (r *restaurantRepoImpl) FindMenuItems(ctx context.Context, ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}
