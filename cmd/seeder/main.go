// cmd/seeder/main.go
//
// Seeds the development database with a demo catalog and client book so the
// API has something to sell right after migrations run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/twinkerhq/pos-be/internal/adapters/db"
	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/pkg/config"
	"github.com/twinkerhq/pos-be/internal/pkg/logger"
)

type seedProduct struct {
	name        string
	price       string
	description string
	stock       int
}

var seedProducts = []seedProduct{
	{"Espresso", "1.80", "Single shot espresso", 500},
	{"Cappuccino", "2.60", "Espresso with steamed milk foam", 500},
	{"Croissant", "1.50", "Butter croissant, baked daily", 40},
	{"Ham Sandwich", "4.20", "Ham and cheese on baguette", 25},
	{"Orange Juice", "2.90", "Freshly squeezed, 330ml", 60},
	{"Mineral Water", "1.20", "Still, 500ml bottle", 120},
	{"Chocolate Muffin", "2.10", "Double chocolate muffin", 30},
	{"Caesar Salad", "6.50", "Romaine, parmesan, croutons", 15},
	{"Green Tea", "1.90", "Loose leaf sencha", 80},
	{"Cheesecake Slice", "3.40", "New York style", 12},
}

var seedClients = []domain.Client{
	{Name: "Maria Lopez", Phone: "555-0101", Email: "maria@example.com"},
	{Name: "John Carter", Phone: "555-0102", Email: "jcarter@example.com"},
	{Name: "Akira Tanaka", Phone: "555-0103"},
	{Name: "Fatima Haddad", Email: "fatima@example.com"},
}

func main() {
	wipe := flag.Bool("wipe", false, "truncate existing data before seeding")
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction() {
		slogger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	if *wipe {
		slogger.Info("wiping existing data")
		for _, table := range []string{"sales", "bills", "inventory", "products", "clients"} {
			if _, err := database.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
				slogger.Error("failed to truncate table",
					slog.String("table", table),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	products := db.NewProductRepository(database, slogger)
	inventory := db.NewInventoryRepository(database, slogger)
	clients := db.NewClientRepository(database, slogger)

	if err := seedCatalog(ctx, products, inventory); err != nil {
		slogger.Error("failed to seed catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seedClientBook(ctx, clients); err != nil {
		slogger.Error("failed to seed clients", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeding complete",
		slog.Int("products", len(seedProducts)),
		slog.Int("clients", len(seedClients)))
}

func seedCatalog(ctx context.Context, products ports.ProductRepository, inventory ports.InventoryRepository) error {
	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("invalid price for %q: %w", sp.name, err)
		}

		product := &domain.Product{
			Name:        sp.name,
			Price:       price,
			Description: sp.description,
		}
		product.PrepareForStorage()

		if err := products.Insert(ctx, product); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", sp.name, err)
		}

		record := &domain.InventoryRecord{
			ID:        uuid.New(),
			ProductID: product.ID,
			Stock:     sp.stock,
			UpdatedAt: time.Now(),
		}
		if err := inventory.Insert(ctx, record); err != nil {
			return fmt.Errorf("failed to insert inventory for %q: %w", sp.name, err)
		}
	}
	return nil
}

func seedClientBook(ctx context.Context, clients ports.ClientRepository) error {
	for i := range seedClients {
		client := seedClients[i]
		client.PrepareForStorage()

		if err := clients.Insert(ctx, &client); err != nil {
			return fmt.Errorf("failed to insert client %q: %w", client.Name, err)
		}
	}
	return nil
}
