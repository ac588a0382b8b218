package config

import (
	"fmt"

	"foodapp-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the password of every seeded account
const SeedPassword = "password123"

type seedUser struct {
	Name          string
	Email         string
	Role          models.UserRole
	Country       models.Country
	PaymentMethod string
}

var seedUsers = []seedUser{
	{"Nick Fury", "nick@slooze.xyz", models.RoleAdmin, models.CountryIndia, "VISA **** 1111"},
	{"Captain Marvel", "carol@slooze.xyz", models.RoleManager, models.CountryIndia, ""},
	{"Captain America", "steve@slooze.xyz", models.RoleManager, models.CountryAmerica, ""},
	{"Thanos", "thanos@slooze.xyz", models.RoleMember, models.CountryIndia, ""},
	{"Thor", "thor@slooze.xyz", models.RoleMember, models.CountryIndia, ""},
	{"Travis", "travis@slooze.xyz", models.RoleMember, models.CountryAmerica, ""},
}

var seedRestaurants = []struct {
	Name    string
	Country models.Country
	Menu    []models.MenuItem
}{
	{"Mumbai Masala", models.CountryIndia, []models.MenuItem{{Name: "Paneer Tikka", PriceCents: 500}}},
	{"Bangalore Bites", models.CountryIndia, []models.MenuItem{{Name: "Masala Dosa", PriceCents: 350}}},
	{"New York Nosh", models.CountryAmerica, []models.MenuItem{{Name: "Cheeseburger", PriceCents: 899}}},
	{"San Francisco Sizzle", models.CountryAmerica, []models.MenuItem{{Name: "Sourdough Pizza", PriceCents: 1299}}},
}

// Seed creates the demo users, restaurants and menus. Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range seedUsers {
			user := models.User{
				Name:         u.Name,
				PasswordHash: string(hash),
				Role:         u.Role,
				Country:      u.Country,
			}
			if u.PaymentMethod != "" {
				pm := u.PaymentMethod
				user.PaymentMethod = &pm
			}
			if err := tx.Where(models.User{Email: u.Email}).Attrs(user).FirstOrCreate(&models.User{}).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
		}

		for _, r := range seedRestaurants {
			var restaurant models.Restaurant
			if err := tx.Where(models.Restaurant{Name: r.Name}).
				Attrs(models.Restaurant{Country: r.Country}).
				FirstOrCreate(&restaurant).Error; err != nil {
				return fmt.Errorf("seed restaurant %s: %w", r.Name, err)
			}
			for _, item := range r.Menu {
				if err := tx.Where(models.MenuItem{RestaurantID: restaurant.ID, Name: item.Name}).
					Attrs(models.MenuItem{PriceCents: item.PriceCents}).
					FirstOrCreate(&models.MenuItem{}).Error; err != nil {
					return fmt.Errorf("seed menu item %s: %w", item.Name, err)
				}
			}
		}
		return nil
	})
}
