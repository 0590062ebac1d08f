package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/arefin/procurehub-backend/config"
	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Expected columns: name, description, category, price, discounted_price,
// stock, sizes (comma separated), image_url. The first row is a header.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d (skipped %d rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 6 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		category := strings.TrimSpace(row[2])
		priceStr := strings.TrimSpace(row[3])
		discountStr := strings.TrimSpace(row[4])
		stockStr := strings.TrimSpace(row[5])

		if name == "" || category == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			skipped++
			continue
		}

		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			skipped++
			continue
		}

		var discounted *float64
		if discountStr != "" {
			d, err := strconv.ParseFloat(discountStr, 64)
			if err != nil || d < 0 || d > price {
				skipped++
				continue
			}
			discounted = &d
		}

		var sizes []string
		if len(row) > 6 {
			for _, s := range strings.Split(row[6], ",") {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					sizes = append(sizes, trimmed)
				}
			}
		}

		imageURL := ""
		if len(row) > 7 {
			imageURL = strings.TrimSpace(row[7])
		}

		// Deduplicate on name+category
		key := fmt.Sprintf("%s|%s", name, category)
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true

		products = append(products, model.Product{
			Name:            name,
			Description:     description,
			Category:        category,
			Price:           price,
			DiscountedPrice: discounted,
			AvailableStock:  stock,
			SizeOptions:     sizes,
			ImageURL:        imageURL,
		})

		if len(products)%500 == 0 {
			fmt.Printf("Processed %d products...\n", len(products))
		}
	}

	return products, skipped, nil
}
