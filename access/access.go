// Package access decides who may see and change what.
//
// Decide is the single place role, ownership and country rules are evaluated. It is pure:
// handlers and services load the data, Decide answers allow or deny with a reason.
package access

import (
	"fmt"

	"foodapp-api/errs"
	"foodapp-api/models"
)

// Identity is the trusted caller record extracted from a verified token.
type Identity struct {
	UserID  uint
	Email   string
	Role    models.UserRole
	Country models.Country
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Scope returns the country filter for listings. Nil means unrestricted.
func Scope(id Identity) *models.Country {
	if id.IsAdmin() {
		return nil
	}
	c := id.Country
	return &c
}

// InScope reports whether rows of the given country are visible to id.
func InScope(id Identity, country models.Country) bool {
	scope := Scope(id)
	return scope == nil || *scope == country
}

// Action names an operation subject to Decide.
type Action string

const (
	// ActionOrderFrom covers placing an order for an item of a restaurant in Target.Country.
	ActionOrderFrom           Action = "order_from"
	ActionViewOrder           Action = "view_order"
	ActionCheckout            Action = "checkout"
	ActionCancel              Action = "cancel"
	ActionDelete              Action = "delete"
	ActionUpdatePaymentMethod Action = "update_payment_method"
)

// Target describes the resource an action applies to.
type Target struct {
	OwnerID uint
	Country models.Country
}

// Decision is the outcome of Decide. Reason is set on deny.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts a deny into a forbidden error, or nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return errs.Forbidden(d.Reason)
}

// Decide applies the role, ownership and country rules for action on target.
func Decide(id Identity, action Action, target Target) Decision {
	switch action {
	case ActionOrderFrom:
		if InScope(id, target.Country) {
			return allow()
		}
		return deny("Cross-country order not allowed")

	case ActionViewOrder:
		if id.IsAdmin() {
			return allow()
		}
		if !InScope(id, target.Country) {
			return deny("Cross-country not allowed")
		}
		if id.Role == models.RoleManager || target.OwnerID == id.UserID {
			return allow()
		}
		return deny("This order does not belong to you")

	case ActionCheckout, ActionCancel:
		switch id.Role {
		case models.RoleAdmin:
			return allow()
		case models.RoleManager:
		default:
			return deny("Forbidden")
		}
		if target.OwnerID != id.UserID {
			return deny(fmt.Sprintf("Managers can only %s their own orders", action))
		}
		if !InScope(id, target.Country) {
			return deny("Cross-country not allowed")
		}
		return allow()

	case ActionDelete, ActionUpdatePaymentMethod:
		if id.IsAdmin() {
			return allow()
		}
		return deny("Forbidden")
	}
	return deny("Unknown action")
}
