package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/entity"
)

// SeedAdmin creates the first admin account when ADMIN_EMAIL/ADMIN_PASSWORD
// are set and no such user exists yet.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a small starter menu for local development.
func SeedMenu() error {
	db := DB()

	stock := func(n int) *int { return &n }
	items := []entity.MenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 12.00, Category: "entree", Calories: 850},
		{Name: "Pasta Carbonara", Description: "Egg, pecorino, guanciale", Price: 14.50, Category: "entree", Calories: 920},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: 8.00, Category: "starter", Calories: 380},
		{Name: "Tiramisu", Description: "House-made", Price: 6.50, Category: "dessert", Calories: 450, Stock: stock(20)},
	}
	for i := range items {
		if err := db.Where("name = ?", items[i].Name).FirstOrCreate(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("menu seeded")
	return nil
}
