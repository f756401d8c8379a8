package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shopfront/shopfront-backend/config"
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Seeds the database with the demo catalog, two users and one review.
// All existing rows are dropped first. An optional XLSX file adds extra
// products on top of the demo catalog.
func main() {
	xlsxPath := flag.String("products", "", "optional XLSX file with extra products (name, description, price, stock, category)")
	flag.Parse()

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	gdb := db.GetDB()

	// Clear
	for _, table := range []string{"reviews", "order_items", "orders", "products", "categories", "users"} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal("Failed to clear table "+table+":", err)
		}
	}

	categories := []model.Category{
		{Name: "Electronics", Description: "Phones, laptops and accessories"},
		{Name: "Fashion", Description: "Clothing and accessories"},
		{Name: "Home", Description: "Home & kitchen"},
		{Name: "Books", Description: "Fiction & non-fiction"},
	}
	if err := gdb.Create(&categories).Error; err != nil {
		log.Fatal("Failed to insert categories:", err)
	}

	products := []model.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Noise-cancelling over-ear headphones",
			Price:       decimal.NewFromFloat(129.99),
			Stock:       30,
			Category:    "Electronics",
			Images:      []string{"/static/images/headphones.jpg"},
		},
		{
			Name:        "Smartphone X",
			Description: "6.5 inch display smartphone with 128GB storage",
			Price:       decimal.NewFromFloat(699.00),
			Stock:       15,
			Category:    "Electronics",
			Images:      []string{"/static/images/smartphone.jpg"},
		},
		{
			Name:        "Men's Denim Jacket",
			Description: "Classic fit denim jacket",
			Price:       decimal.NewFromFloat(59.99),
			Stock:       50,
			Category:    "Fashion",
			Images:      []string{"/static/images/denim_jacket.jpg"},
		},
		{
			Name:        "Cooking Pan Set",
			Description: "Non-stick 3-piece cooking pan set",
			Price:       decimal.NewFromFloat(79.50),
			Stock:       20,
			Category:    "Home",
			Images:      []string{"/static/images/pan_set.jpg"},
		},
		{
			Name:        "Learning Python (Book)",
			Description: "A modern introduction to Python.",
			Price:       decimal.NewFromFloat(39.00),
			Stock:       100,
			Category:    "Books",
			Images:      []string{"/static/images/python_book.jpg"},
		},
	}

	if *xlsxPath != "" {
		extra, err := readProductsFromXLSX(*xlsxPath)
		if err != nil {
			log.Fatal("Failed to read XLSX:", err)
		}
		fmt.Printf("Read %d extra products from %s\n", len(extra), *xlsxPath)
		products = append(products, extra...)
	}

	if err := gdb.Create(&products).Error; err != nil {
		log.Fatal("Failed to insert products:", err)
	}

	users := []model.User{
		{Username: "admin", Password: "adminpass"},
		{Username: "user1", Password: "user1pass"},
	}
	if err := gdb.Create(&users).Error; err != nil {
		log.Fatal("Failed to insert users:", err)
	}

	review := model.Review{
		ProductID: products[0].ID,
		UserID:    users[1].ID,
		Username:  users[1].Username,
		Rating:    5,
		Text:      "Excellent product, highly recommended!",
	}
	if err := gdb.Create(&review).Error; err != nil {
		log.Fatal("Failed to insert review:", err)
	}

	fmt.Println("Sample data inserted.")
	fmt.Printf("Categories: %d, Products: %d, Users: %d\n", len(categories), len(products), len(users))
}

// readProductsFromXLSX reads one product per row from the first sheet.
// Columns: name, description, price, stock, category. A header row whose
// first cell is "name" is skipped.
func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var products []model.Product
	for i, row := range rows {
		if len(row) < 5 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+1, row[2])
		}
		stock, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid stock %q", i+1, row[3])
		}

		products = append(products, model.Product{
			Name:        strings.TrimSpace(row[0]),
			Description: strings.TrimSpace(row[1]),
			Price:       price,
			Stock:       stock,
			Category:    strings.TrimSpace(row[4]),
			Images:      []string{},
		})
	}

	return products, nil
}
