package services

import (
	"context"
	"strings"

	"foodapp-api/access"
	"foodapp-api/errs"
	"foodapp-api/models"
	"foodapp-api/repository"
)

const minPaymentMethodLen = 3

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Me(ctx context.Context, actor access.Identity) (*models.User, error) {
	return s.users.FindByID(ctx, actor.UserID)
}

// UpdatePaymentMethod sets a user's payment method. Only admins may do this.
func (s *UserService) UpdatePaymentMethod(ctx context.Context, actor access.Identity, userID uint, method string) (*models.User, error) {
	if err := access.Decide(actor, access.ActionUpdatePaymentMethod, access.Target{OwnerID: userID}).Err(); err != nil {
		return nil, err
	}
	method = strings.TrimSpace(method)
	if len(method) < minPaymentMethodLen {
		return nil, errs.Validation("payment_method must be at least 3 characters")
	}
	return s.users.UpdatePaymentMethod(ctx, userID, method)
}
