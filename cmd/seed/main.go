// Command seed wipes the products collection and loads the demo catalog.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shoplane/catalog-service/internal/core/domain"
	"github.com/shoplane/catalog-service/internal/infrastructure/config"
	mongostore "github.com/shoplane/catalog-service/internal/infrastructure/db/mongo"
	"github.com/shoplane/catalog-service/pkg/logger"
)

var products = []domain.Product{
	{
		Name:        "Smartphone X Pro",
		Price:       899.99,
		Description: "The latest flagship smartphone with 5G capabilities, 6.7-inch AMOLED display, 128GB storage, and an advanced camera system.",
		Category:    "Electronics",
		Stock:       25,
		ImageURL:    "https://images.unsplash.com/photo-1598327105666-5b89351aff97?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Wireless Noise Cancelling Headphones",
		Price:       249.99,
		Description: "Premium wireless headphones with active noise cancellation, 30-hour battery life, and comfortable over-ear design.",
		Category:    "Electronics",
		Stock:       18,
		ImageURL:    "https://images.unsplash.com/photo-1546435770-a3e426bf472b?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Classic Cotton T-Shirt",
		Price:       19.99,
		Description: "Soft and comfortable 100% cotton t-shirt, perfect for everyday wear. Available in multiple colors.",
		Category:    "Clothing",
		Stock:       100,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Stainless Steel Water Bottle",
		Price:       24.99,
		Description: "Double-walled insulated water bottle that keeps beverages cold for 24 hours or hot for 12 hours. BPA-free and eco-friendly.",
		Category:    "Home & Kitchen",
		Stock:       50,
		ImageURL:    "https://images.unsplash.com/photo-1602142946018-34606aa83259?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Smart Fitness Watch",
		Price:       179.99,
		Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring, GPS, sleep tracking, and 7-day battery life.",
		Category:    "Electronics",
		Stock:       15,
		ImageURL:    "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Ergonomic Office Chair",
		Price:       199.99,
		Description: "Comfortable ergonomic chair with lumbar support, adjustable height, and breathable mesh back. Perfect for your home office.",
		Category:    "Home & Kitchen",
		Stock:       8,
		ImageURL:    "https://images.unsplash.com/photo-1595515106883-2a61b6fae4a5?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Bestselling Novel",
		Price:       14.99,
		Description: "The latest bestselling fiction novel that has taken the literary world by storm. Available in hardcover.",
		Category:    "Books",
		Stock:       30,
		ImageURL:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Professional Kitchen Knife Set",
		Price:       129.99,
		Description: "Complete set of high-quality stainless steel kitchen knives with ergonomic handles. Includes chef knife, bread knife, utility knife, and more.",
		Category:    "Home & Kitchen",
		Stock:       12,
		ImageURL:    "https://images.unsplash.com/photo-1593618998160-e34014e67546?q=80&w=1000&auto=format&fit=crop",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	if _, err := db.Collection("products").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear products")
	}
	log.Info().Msg("deleted all existing products")

	repo := mongostore.NewProductRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create product indexes")
	}

	now := time.Now().UTC()
	for i, p := range products {
		// stagger timestamps so the newest-first listing is stable
		p.CreatedAt = now.Add(time.Duration(i) * time.Second)
		if _, err := repo.Create(ctx, &p); err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("failed to insert product")
		}
	}

	log.Info().Int("count", len(products)).Msg("database seeding completed")
}
