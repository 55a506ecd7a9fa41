package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog maintenance tool. The API treats the catalog as read-only; this is
// the out-of-band process that creates and delists products.
func main() {
	addCmd := flag.NewFlagSet("add-product", flag.ExitOnError)
	name := addCmd.String("name", "", "Product name")
	description := addCmd.String("description", "", "Product description")
	price := addCmd.String("price", "", "Product price, e.g. 49.99")
	imageURL := addCmd.String("image-url", "", "Product image URL")
	inactive := addCmd.Bool("inactive", false, "Create the product delisted")

	archiveCmd := flag.NewFlagSet("archive-product", flag.ExitOnError)
	archiveID := archiveCmd.String("id", "", "Product id to delist")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-product', 'list-products' or 'archive-product' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-product":
		addCmd.Parse(os.Args[2:])
		if *name == "" || *price == "" {
			fmt.Println("name and price are required")
			addCmd.PrintDefaults()
			os.Exit(1)
		}
		addProduct(*name, *description, *price, *imageURL, !*inactive)
	case "list-products":
		listProducts()
	case "archive-product":
		archiveCmd.Parse(os.Args[2:])
		if *archiveID == "" {
			fmt.Println("id is required")
			archiveCmd.PrintDefaults()
			os.Exit(1)
		}
		archiveProduct(*archiveID)
	default:
		fmt.Println("expected 'add-product', 'list-products' or 'archive-product' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./nexo.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running cli before server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func addProduct(name, description, priceStr, imageURL string, active bool) {
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		log.Fatalf("Invalid price %q: %v", priceStr, err)
	}
	if price.IsNegative() {
		log.Fatalf("Price must not be negative")
	}

	db := openStore()
	defer db.Close()

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Active:      active,
	}
	if err := db.CreateProduct(context.Background(), product); err != nil {
		log.Fatalf("Failed to create product: %v", err)
	}

	fmt.Printf("Product '%s' created with id %s\n", name, product.ID)
}

func listProducts() {
	db := openStore()
	defer db.Close()

	products, err := db.ListProducts(context.Background())
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}

	for _, p := range products {
		state := "active"
		if !p.Active {
			state = "archived"
		}
		fmt.Printf("%s  %-10s %8s  %s\n", p.ID, state, p.Price.String(), p.Name)
	}
}

func archiveProduct(id string) {
	db := openStore()
	defer db.Close()

	if err := db.ArchiveProduct(context.Background(), id); err != nil {
		log.Fatalf("Failed to archive product %s: %v", id, err)
	}
	fmt.Printf("Product %s archived.\n", id)
}
