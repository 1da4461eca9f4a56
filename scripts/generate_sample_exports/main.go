package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = "Nutrislice Food ID\tNutrislice Food Name\tLocations\tStation\tCategory\tText\tPrice\tServing Days\tMenu Types\tPublished"

// generateSampleExports writes small Nutrislice-style exports for local runs.
// Each file repeats one row so the cleaning report shows a duplicate, and the
// grill export carries a nameless row that cleaning drops.
func main() {
	dataDir := "data/exports"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	exports := map[string][]string{
		"fresh_food_company.tsv.gz": {
			"\t\tFresh Food Company\tGrill\t\tLunch specials start at 11\t\t\t\t",
			"4412\tGrilled Chicken\tFresh Food Company\tGrill\tEntree\t320 calories, 42g protein, 4g carbs, 12g fat\t8.50\tMonday, Tuesday\tLunch\ttrue",
			"4412\tGrilled Chicken\tFresh Food Company\tGrill\tEntree\t320 calories, 42g protein, 4g carbs, 12g fat\t8.50\tMonday, Tuesday\tLunch\ttrue",
			"4413\tSide Salad\tFresh Food Company\tGreens\tSide\t90 calories, 2g protein, 10g carbs, 4g fat, vegan\t3.00\tMonday\tLunch\ttrue",
			"4414\tPeanut Butter Bar\tFresh Food Company\tBakery\tSnack\t210 calories, 8g protein, contains peanuts\t2.25\tMonday\tLunch\ttrue",
		},
		"cafe_ventanas.tsv.gz": {
			"5101\tPad Thai\tCafe Ventanas\tWok\tEntree\t520 calories, 22g protein, 70g carbs, 15g fat, contains peanuts\t9.50\tFriday\tDinner\ttrue",
			"5102\tTofu Stir Fry\tCafe Ventanas\tWok\tEntree\t450 calories, 25g protein, 50g carbs, 14g fat, vegan\t7.00\tFriday\tDinner\ttrue",
			"5102\tTofu Stir Fry\tCafe Ventanas\tWok\tEntree\t450 calories, 25g protein, 50g carbs, 14g fat, vegan\t7.00\tFriday\tDinner\ttrue",
			"5103\tIced Latte\tCafe Ventanas\tCoffee\tBeverage\t180 calories, 8g protein, contains milk\t$4.25\tFriday\tBreakfast\ttrue",
			"5104\tSeasonal Tart\tCafe Ventanas\tBakery\tDessert\t300 calories, contains wheat\t3.50\tFriday\tDinner\tfalse",
		},
	}

	for filename, rows := range exports {
		filePath := filepath.Join(dataDir, filename)

		if err := createExportFile(filePath, rows); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d rows\n", filePath, len(rows))
	}

	fmt.Println("\nSample exports created successfully!")
	fmt.Println("Import them with:")
	fmt.Println("  go run ./cmd/importer -files data/exports/fresh_food_company.tsv.gz,data/exports/cafe_ventanas.tsv.gz")
}

func createExportFile(filePath string, rows []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	content := header + "\n" + strings.Join(rows, "\n") + "\n"
	if _, err := io.WriteString(gzipWriter, content); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
