package db

import (
	"context"
	"fmt"
	"time"

	"github.com/lankanwheels/dealership/internal/models"
)

type seedAccount struct {
	user     models.User
	password string
}

// Demo accounts. Rajith has no working credentials: the account is inactive
// and login rejects inactive users before the password check.
func seedAccounts() []seedAccount {
	return []seedAccount{
		{
			user: models.User{
				ID: "1", Name: "Admin User", Email: "admin@lankanwheels.lk",
				Role: models.RoleAdmin, IsActive: true,
				CreatedAt: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			},
			password: "admin123",
		},
		{
			user: models.User{
				ID: "2", Name: "Kasun Silva", Email: "kasun@lankanwheels.lk",
				Role: models.RoleEmployee, IsActive: true,
				CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			password: "emp123",
		},
		{
			user: models.User{
				ID: "3", Name: "Priya Fernando", Email: "priya@lankanwheels.lk",
				Role: models.RoleEmployee, IsActive: true,
				CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			password: "emp123",
		},
		{
			user: models.User{
				ID: "4", Name: "Rajith Perera", Email: "rajith@lankanwheels.lk",
				Role: models.RoleEmployee, IsActive: false,
				CreatedAt: time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
			},
			password: "emp123",
		},
	}
}

// SeedUsers inserts the fixed demo accounts when the users collection is
// empty. Passwords are hashed with the provided hash function before insert;
// nothing is stored in plaintext.
func SeedUsers(ctx context.Context, users UserCollection, hash func(string) (string, error)) error {
	count, err := users.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, account := range seedAccounts() {
		hashed, err := hash(account.password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", account.user.Email, err)
		}
		account.user.PasswordHash = hashed
		if err := users.InsertUser(ctx, account.user); err != nil {
			return fmt.Errorf("inserting user %s: %w", account.user.Email, err)
		}
	}
	return nil
}
