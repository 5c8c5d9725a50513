package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"meatmarket/internal/config"
	"meatmarket/internal/db"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
	"meatmarket/internal/service"
)

//go:embed seed.json
var defaultSeed []byte

// SeedData is the layout of a seed file.
type SeedData struct {
	Buyers  []SeedUser   `json:"buyers"`
	Sellers []SeedSeller `json:"sellers"`
	Orders  []SeedOrder  `json:"orders"`
	Reviews []SeedReview `json:"reviews"`
}

// SeedUser is a buyer account.
type SeedUser struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

// SeedSeller is a seller account and its catalog.
type SeedSeller struct {
	SeedUser
	CompanyName string          `json:"companyName"`
	ContactInfo string          `json:"contactInfo"`
	Products    []model.Product `json:"products"`
}

// SeedOrder references products by name.
type SeedOrder struct {
	Username string `json:"username"`
	Items    []struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

// SeedReview references its user and product by name.
type SeedReview struct {
	Username string          `json:"username"`
	Product  string          `json:"product"`
	Rating   decimal.Decimal `json:"rating"`
	Comment  string          `json:"comment"`
}

type seeder struct {
	users    service.UserService
	sellers  service.SellerService
	products service.ProductService
	orders   service.OrderService
	reviews  service.ReviewService

	userIDs    map[string]uint
	productIDs map[string]model.Product
}

func main() {
	file := flag.String("file", "", "seed file (defaults to the built-in demo data)")
	flag.Parse()

	log.Println("Starting seed script...")

	data := defaultSeed
	if *file != "" {
		var err error
		if data, err = os.ReadFile(*file); err != nil {
			log.Fatalf("Failed to read seed file: %v", err)
		}
	}
	var seed SeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	sellerRepo := repository.NewSellerRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	s := &seeder{
		users:      service.NewUserService(userRepo, orderRepo, cfg.BcryptCost),
		sellers:    service.NewSellerService(userRepo, sellerRepo, productRepo, cfg.BcryptCost),
		products:   service.NewProductService(productRepo, sellerRepo, nil),
		orders:     service.NewOrderService(orderRepo, userRepo, productRepo),
		reviews:    service.NewReviewService(repository.NewReviewRepository(gormDB), userRepo, productRepo),
		userIDs:    map[string]uint{},
		productIDs: map[string]model.Product{},
	}

	if err := s.run(context.Background(), seed); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Printf("Seed completed successfully!")
}

func (s *seeder) run(ctx context.Context, seed SeedData) error {
	for _, b := range seed.Buyers {
		if err := s.seedBuyer(ctx, b); err != nil {
			return err
		}
	}
	for _, sl := range seed.Sellers {
		if err := s.seedSeller(ctx, sl); err != nil {
			return err
		}
	}
	log.Printf("  - Users ready: %d", len(s.userIDs))
	log.Printf("  - Products ready: %d", len(s.productIDs))

	for _, o := range seed.Orders {
		items := make([]model.NewLineItem, 0, len(o.Items))
		var total int64
		for _, it := range o.Items {
			p, ok := s.productIDs[it.Product]
			if !ok {
				return fmt.Errorf("order for %s: unknown product %q", o.Username, it.Product)
			}
			items = append(items, model.NewLineItem{ProductID: p.ProductID, Quantity: it.Quantity})
			total += p.PriceInCents * int64(it.Quantity)
		}
		order, err := s.orders.Create(ctx, s.userIDs[o.Username], items, total)
		if err != nil {
			return fmt.Errorf("order for %s: %w", o.Username, err)
		}
		log.Printf("  - Order %d created for %s", order.OrderID, o.Username)
	}

	for _, r := range seed.Reviews {
		p, ok := s.productIDs[r.Product]
		if !ok {
			return fmt.Errorf("review by %s: unknown product %q", r.Username, r.Product)
		}
		_, err := s.reviews.Create(ctx, &model.Review{
			UserID:    s.userIDs[r.Username],
			ProductID: p.ProductID,
			Rating:    r.Rating,
			Comment:   r.Comment,
		})
		if err != nil {
			return fmt.Errorf("review by %s: %w", r.Username, err)
		}
	}
	log.Printf("  - Reviews created: %d", len(seed.Reviews))

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	log.Printf("  - Totals: %d users, %d orders", len(users), len(orders))
	return nil
}

func (u SeedUser) user() *model.User {
	return &model.User{
		Username:        u.Username,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		ShippingAddress: u.ShippingAddress,
	}
}

// seedBuyer registers b unless the username already exists.
func (s *seeder) seedBuyer(ctx context.Context, b SeedUser) error {
	user, err := s.users.Register(ctx, b.user())
	if apperr.IsBadRequest(err) {
		if user, err = s.users.Get(ctx, b.Username); err != nil {
			return fmt.Errorf("buyer %s: %w", b.Username, err)
		}
	} else if err != nil {
		return fmt.Errorf("buyer %s: %w", b.Username, err)
	}
	s.userIDs[b.Username] = user.UserID
	return nil
}

func (s *seeder) seedSeller(ctx context.Context, sl SeedSeller) error {
	var sellerID uint
	profile, err := s.sellers.Register(ctx, sl.user(), &model.Seller{CompanyName: sl.CompanyName, ContactInfo: sl.ContactInfo})
	switch {
	case err == nil:
		sellerID = profile.SellerID
	case apperr.IsBadRequest(err):
		existing, getErr := s.sellers.GetByCompany(ctx, sl.CompanyName)
		if getErr != nil {
			return fmt.Errorf("seller %s: %w", sl.CompanyName, getErr)
		}
		sellerID = existing.SellerID
	default:
		return fmt.Errorf("seller %s: %w", sl.CompanyName, err)
	}
	s.userIDs[sl.Username] = sellerID

	existing, err := s.sellers.Products(ctx, sellerID)
	if err != nil {
		return fmt.Errorf("seller %s products: %w", sl.CompanyName, err)
	}
	byName := make(map[string]model.Product, len(existing))
	for _, p := range existing {
		byName[p.Name] = p
	}

	for _, p := range sl.Products {
		if found, ok := byName[p.Name]; ok {
			s.productIDs[p.Name] = found
			continue
		}
		p.SellerID = sellerID
		created, err := s.products.Create(ctx, &p)
		if err != nil {
			return fmt.Errorf("product %s: %w", p.Name, err)
		}
		s.productIDs[p.Name] = *created
	}
	return nil
}
