package services

import (
	"context"

	"foodapp-api/access"
	"foodapp-api/models"
	"foodapp-api/repository"
)

// CatalogService serves restaurants and menus inside the caller's country scope
type CatalogService struct {
	restaurants repository.RestaurantRepository
}

func NewCatalogService(restaurants repository.RestaurantRepository) *CatalogService {
	return &CatalogService{restaurants: restaurants}
}

func (s *CatalogService) ListRestaurants(ctx context.Context, actor access.Identity) ([]models.Restaurant, error) {
	return s.restaurants.List(ctx, access.Scope(actor))
}

// GetRestaurant reports restaurants outside the scope as not found
func (s *CatalogService) GetRestaurant(ctx context.Context, actor access.Identity, id uint) (*models.Restaurant, error) {
	return s.restaurants.FindByID(ctx, id, access.Scope(actor))
}

func (s *CatalogService) GetMenu(ctx context.Context, actor access.Identity, restaurantID uint) ([]models.MenuItem, error) {
	restaurant, err := s.GetRestaurant(ctx, actor, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.MenuItems == nil {
		return []models.MenuItem{}, nil
	}
	return restaurant.MenuItems, nil
}
