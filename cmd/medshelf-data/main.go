// medshelf-data inspects product dataset files before they are shipped to
// the main binary via catalog.dataset_path.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/askell/medshelf/internal/catalog"
	"github.com/askell/medshelf/internal/dataset"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "validate":
		err = validate(args)
	case "summary":
		err = summary(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown medshelf-data subcommand: %s\n", sub)
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "medshelf-data error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("medshelf-data <validate|summary> [--file dataset.json]")
}

func loadDataset(args []string, name string) ([]catalog.Product, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	file := fs.String("file", "", "dataset JSON file (default: built-in demo catalog)")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	path := strings.TrimSpace(*file)
	if path == "" {
		products, err := dataset.Default()
		return products, "built-in", err
	}
	products, err := dataset.LoadFile(path)
	return products, path, err
}

func validate(args []string) error {
	products, source, err := loadDataset(args, "validate")
	if err != nil {
		return err
	}
	fmt.Printf("ok: %s (%d products)\n", source, len(products))
	return nil
}

func summary(args []string) error {
	products, source, err := loadDataset(args, "summary")
	if err != nil {
		return err
	}

	type categorySummary struct {
		Category   string  `json:"category"`
		Products   int     `json:"products"`
		InStock    int     `json:"in_stock"`
		OutOfStock int     `json:"out_of_stock"`
		MinPrice   float64 `json:"min_price"`
		MaxPrice   float64 `json:"max_price"`
	}

	byCategory := map[string]*categorySummary{}
	for _, p := range products {
		s, ok := byCategory[p.Category]
		if !ok {
			s = &categorySummary{Category: p.Category, MinPrice: p.Price, MaxPrice: p.Price}
			byCategory[p.Category] = s
		}
		s.Products++
		if p.Stock > 0 {
			s.InStock++
		} else {
			s.OutOfStock++
		}
		if p.Price < s.MinPrice {
			s.MinPrice = p.Price
		}
		if p.Price > s.MaxPrice {
			s.MaxPrice = p.Price
		}
	}

	summaries := make([]categorySummary, 0, len(byCategory))
	for _, s := range byCategory {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})

	payload := struct {
		Source     string            `json:"source"`
		Products   int               `json:"products"`
		Categories []categorySummary `json:"categories"`
	}{Source: source, Products: len(products), Categories: summaries}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
