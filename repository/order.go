package repository

import (
	"context"

	"foodapp-api/models"

	"gorm.io/gorm"
)

// OrderFilter narrows order listings. Nil fields do not filter.
type OrderFilter struct {
	UserID  *uint
	Country *models.Country
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, from []models.OrderStatus, to models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Items.MenuItem")
}

// Create inserts the order and its items in one transaction
func (r *orderRepoImpl) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(r.db.WithContext(ctx)).First(&order, id).Error; err != nil {
		return nil, notFound(err, "Order not found")
	}
	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := withItems(r.db.WithContext(ctx))
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Country != nil {
		query = query.Where("country = ?", *filter.Country)
	}

	var orders []models.Order
	err := query.Order("created_at desc").Order("id desc").Find(&orders).Error
	return orders, err
}

// UpdateStatus moves the order to `to` only if it is still in one of `from`
func (r *orderRepoImpl) UpdateStatus(ctx context.Context, id uint, from []models.OrderStatus, to models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ? AND status IN ?", id, from).
			Update("status", to)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrStatusMismatch
		}
		return withItems(tx).First(&order, id).Error
	})
	if err != nil {
		return nil, notFound(err, "Order not found")
	}
	return &order, nil
}

// Delete removes the order's items first, then the order
func (r *orderRepoImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return notFound(err, "Order not found")
}
