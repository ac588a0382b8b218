package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"foodapp-api/access"
	"foodapp-api/errs"
	"foodapp-api/models"
	"foodapp-api/repository"
	"foodapp-api/statemachine"
)

// LineRequest is one requested menu item and its quantity
type LineRequest struct {
	MenuItemID uint
	Quantity   int
}

type OrderService struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	logger      *slog.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	restaurants repository.RestaurantRepository,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		logger:      logger.With("component", "order_service"),
	}
}

// Create places an order for actor. Prices are snapshotted from the menu and
// the order takes the actor's country.
func (s *OrderService) Create(ctx context.Context, actor access.Identity, lines []LineRequest) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, errs.Validation("items must contain at least one entry")
	}

	ids := make([]uint, 0, len(lines))
	seen := make(map[uint]bool, len(lines))
	for i, l := range lines {
		if l.MenuItemID == 0 {
			return nil, errs.Validation(fmt.Sprintf("items[%d].menu_item_id is required", i))
		}
		if l.Quantity < 1 || l.Quantity > models.MaxQuantity {
			return nil, errs.Validation(fmt.Sprintf("items[%d].quantity must be between 1 and %d", i, models.MaxQuantity))
		}
		if !seen[l.MenuItemID] {
			seen[l.MenuItemID] = true
			ids = append(ids, l.MenuItemID)
		}
	}

	menuRows, err := s.restaurants.FindMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(menuRows) != len(ids) {
		return nil, errs.Validation("Invalid menu items")
	}

	byID := make(map[uint]models.MenuItem, len(menuRows))
	for _, m := range menuRows {
		if m.Restaurant == nil {
			return nil, fmt.Errorf("menu item %d loaded without restaurant", m.ID)
		}
		if err := access.Decide(actor, access.ActionOrderFrom, access.Target{Country: m.Restaurant.Country}).Err(); err != nil {
			return nil, err
		}
		byID[m.ID] = m
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		m := byID[l.MenuItemID]
		items = append(items, models.OrderItem{
			MenuItemID:     m.ID,
			Quantity:       l.Quantity,
			PriceEachCents: m.PriceCents,
			Name:           m.Name,
		})
	}

	total, err := models.ComputeTotal(items)
	if err != nil {
		return nil, errs.Validation("Order total too large").WithCause(err)
	}

	order := &models.Order{
		UserID:     actor.UserID,
		Country:    actor.Country,
		Status:     models.StatusCreated,
		TotalCents: total,
		Items:      items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Order created",
		"order_id", order.ID, "user_id", actor.UserID, "total_cents", order.TotalCents)
	return s.orders.FindByID(ctx, order.ID)
}

// ListMine returns the actor's own orders, newest first
func (s *OrderService) ListMine(ctx context.Context, actor access.Identity) ([]models.Order, error) {
	userID := actor.UserID
	return s.orders.List(ctx, repository.OrderFilter{UserID: &userID})
}

// List returns every order the actor may see: all for admins, the country's
// orders for managers, their own for members.
func (s *OrderService) List(ctx context.Context, actor access.Identity) ([]models.Order, error) {
	filter := repository.OrderFilter{Country: access.Scope(actor)}
	if actor.Role == models.RoleMember {
		userID := actor.UserID
		filter.UserID = &userID
	}
	return s.orders.List(ctx, filter)
}

func (s *OrderService) Get(ctx context.Context, actor access.Identity, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Decide(actor, access.ActionViewOrder, targetOf(order)).Err(); err != nil {
		return nil, err
	}
	return order, nil
}

// Checkout marks a CREATED order as PAID. Payment is mocked.
func (s *OrderService) Checkout(ctx context.Context, actor access.Identity, id uint) (*models.Order, error) {
	return s.transition(ctx, actor, id, access.ActionCheckout, statemachine.EventCheckout)
}

func (s *OrderService) Cancel(ctx context.Context, actor access.Identity, id uint) (*models.Order, error) {
	return s.transition(ctx, actor, id, access.ActionCancel, statemachine.EventCancel)
}

// Delete removes an order and its items. Admin only.
func (s *OrderService) Delete(ctx context.Context, actor access.Identity, id uint) error {
	if err := access.Decide(actor, access.ActionDelete, access.Target{}).Err(); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Order deleted", "order_id", id, "by", actor.UserID)
	return nil
}

func (s *OrderService) transition(
	ctx context.Context,
	actor access.Identity,
	id uint,
	action access.Action,
	event statemachine.Event,
) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Decide(actor, action, targetOf(order)).Err(); err != nil {
		return nil, err
	}
	to, err := statemachine.CanTransition(order.Status, event)
	if err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateStatus(ctx, id, statemachine.SourcesFor(event), to)
	if err != nil {
		if errors.Is(err, repository.ErrStatusMismatch) {
			return nil, errs.InvalidState("Order status changed, try again").WithCause(err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Order status changed",
		"order_id", id, "event", event, "from", order.Status, "to", to, "by", actor.UserID)
	return updated, nil
}

func targetOf(order *models.Order) access.Target {
	return access.Target{OwnerID: order.UserID, Country: order.Country}
}
