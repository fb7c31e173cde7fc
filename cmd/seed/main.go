package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"app/internal/domain/model"
	"app/internal/infra/db"
	"app/internal/logging"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var userNames = [][2]string{
	{"Rageeni", "Dawale"},
	{"Aarav", "Mehta"},
	{"Ananya", "Iyer"},
	{"Rohan", "Sharma"},
	{"Kavya", "Nair"},
	{"Aditya", "Kulkarni"},
	{"Pooja", "Patil"},
	{"Siddharth", "Verma"},
	{"Neha", "Joshi"},
	{"Rahul", "Malhotra"},
	{"Ishita", "Banerjee"},
	{"Kunal", "Gupta"},
	{"Sneha", "Deshpande"},
	{"Arjun", "Singh"},
	{"Meera", "Rao"},
}

var artisanStories = []string{
	"I learned this craft from my mother, who worked with her hands long before it became a livelihood. Over the years I have refined traditional techniques while keeping the soul of handmade work alive. Each piece reflects patience and care.",
	"What started as a small hobby slowly became my full-time pursuit. I work with locally sourced materials and believe handmade products should feel personal, not perfect. Every creation has its own character.",
	"Growing up around artisans shaped my love for craftsmanship. I focus on traditional methods passed down through generations. My work celebrates slow, intentional making.",
	"I believe sustainability and craftsmanship go hand in hand. Each product is made in small batches with close attention to detail. Handmade work allows me to stay connected to my roots.",
	"This craft has been in my family for decades. While tools have evolved, the values remain unchanged: quality, honesty, and authenticity in every piece.",
}

var locations = []string{
	"Pune, Maharashtra",
	"Jaipur, Rajasthan",
	"Kochi, Kerala",
	"Kutch, Gujarat",
	"Mysuru, Karnataka",
}

var productDescriptions = []string{
	"This handcrafted product is created using traditional techniques and carefully selected materials. Each piece is made in small batches, ensuring attention to detail and authenticity. Slight variations are a natural part of handmade work.",
	"Designed to be both functional and beautiful, this product reflects hours of skilled craftsmanship. Made with sustainability in mind, it brings warmth and character to everyday use.",
	"Inspired by local art forms and handmade traditions, this product blends practicality with timeless design. Every item carries the story of the artisan behind it.",
}

func main() {
	_ = godotenv.Load()

	logger := logging.New("info")

	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ArtisanProfile{},
		&model.Category{},
		&model.Material{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	// Guard against re-running: the first seeded user marks a completed run.
	var sentinel int64
	gormDB.Model(&model.User{}).Where("email = ?", "rageeni.dawale@demo.com").Count(&sentinel)
	if sentinel > 0 {
		logger.Info("seed already ran, exiting")
		return
	}

	logger.Info("seeding demo data")

	if err := gormDB.Transaction(func(tx *gorm.DB) error {
		return seed(tx)
	}); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed completed")
}

func seed(tx *gorm.DB) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		Email:        "admin@craftcore.com",
		PasswordHash: string(adminHash),
		FirstName:    "Admin",
		LastName:     "CraftCore",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return err
	}

	userHash, err := bcrypt.GenerateFromPassword([]byte("test1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]model.User, 0, len(userNames))
	for _, name := range userNames {
		u := model.User{
			Email:        fmt.Sprintf("%s.%s@demo.com", strings.ToLower(name[0]), strings.ToLower(name[1])),
			PasswordHash: string(userHash),
			FirstName:    name[0],
			LastName:     name[1],
			Role:         model.RoleUser,
			IsActive:     true,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		users = append(users, u)
	}

	// First 8 users become artisans, last 3 of those deactivated.
	artisans := make([]model.ArtisanProfile, 0, 8)
	for i := 0; i < 8; i++ {
		u := users[i]
		a := model.ArtisanProfile{
			UserID:      u.ID,
			DisplayName: u.FirstName + " " + u.LastName,
			Location:    locations[i%len(locations)],
			Story:       artisanStories[i%len(artisanStories)],
			IsActive:    i < 5,
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		artisans = append(artisans, a)
	}

	categories := make([]model.Category, 0, 4)
	for _, name := range []string{"Home Decor", "Jewelry", "Textiles", "Stationery"} {
		c := model.Category{Name: name}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		categories = append(categories, c)
	}

	materials := make([]model.Material, 0, 4)
	for _, name := range []string{"Wood", "Clay", "Cotton", "Metal"} {
		m := model.Material{Name: name}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		materials = append(materials, m)
	}

	stocks := []int64{0, 5, 10}

	products := make([]model.Product, 0, 32)
	for _, a := range artisans {
		count := 3 + rand.Intn(3)
		for j := 0; j < count; j++ {
			p := model.Product{
				ArtisanID:   a.ID,
				Name:        fmt.Sprintf("Handcrafted Item %d", 100+rand.Intn(900)),
				Description: productDescriptions[rand.Intn(len(productDescriptions))],
				Price:       int64(500+rand.Intn(2501)) * 100,
				Stock:       stocks[rand.Intn(len(stocks))],
				CategoryID:  &categories[rand.Intn(len(categories))].ID,
				MaterialID:  &materials[rand.Intn(len(materials))].ID,
				IsActive:    a.IsActive && rand.Intn(3) != 0,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			products = append(products, p)
		}
	}

	statuses := []model.OrderStatus{
		model.OrderStatusOrdered,
		model.OrderStatusPacked,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
	}

	for i := 0; i < 50; i++ {
		buyer := users[rand.Intn(len(users))]
		product := products[rand.Intn(len(products))]

		order := model.Order{
			BuyerID:        buyer.ID,
			Status:         statuses[rand.Intn(len(statuses))],
			FullName:       buyer.FirstName + " " + buyer.LastName,
			Address:        "12 Craft Lane",
			City:           "Pune",
			Pincode:        "411001",
			IdempotencyKey: uuid.NewString(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		item := model.OrderItem{
			OrderID:             order.ID,
			ProductID:           product.ID,
			ProductNameSnapshot: product.Name,
			PriceAtPurchase:     product.Price,
			Quantity:            1,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}

	return nil
}
