package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"taartu/internal/database"
	"taartu/internal/domain"
	"taartu/internal/repository"
)

// Seeds a local sqlite database with a demo owner, business and services.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "taartu.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM analytics_events")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM businesses")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	businesses := repository.NewBusinessRepository(db)
	services := repository.NewServiceRepository(db)

	log.Println("Creating users...")
	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "owner@taartu.com",
		PasswordHash: string(ownerHash),
		Role:         domain.RoleBusinessOwner,
		Name:         "Demo Owner",
	}
	if err := users.Create(ctx, &owner); err != nil {
		log.Fatal(err)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "customer@taartu.com",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		Name:         "Demo Customer",
	}
	if err := users.Create(ctx, &customer); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating business...")
	biz := domain.Business{
		UserID:                   owner.ID,
		Name:                     "Demo Salon",
		Type:                     "Salon",
		Location:                 "Nairobi, Kenya",
		Status:                   domain.BusinessActive,
		PlatformFeePercentage:    domain.DefaultCommissionRate,
		CommissionOnlyModel:      true,
		SubscriptionModelEnabled: false,
	}
	if err := businesses.Create(ctx, &biz); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating services...")
	for _, s := range []domain.Service{
		{BusinessID: biz.ID, Name: "Haircut", Price: decimal.NewFromFloat(1000.00), DurationMinutes: 45},
		{BusinessID: biz.ID, Name: "Manicure", Price: decimal.NewFromFloat(650.00), DurationMinutes: 30},
		{BusinessID: biz.ID, Name: "Full Spa Day", Price: decimal.NewFromFloat(4500.00), DurationMinutes: 240},
	} {
		s := s
		if err := services.Create(ctx, &s); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Println("  owner@taartu.com / owner123")
	log.Println("  customer@taartu.com / customer123")
}
