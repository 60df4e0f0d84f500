// cmd/searchcli/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/koushikreddyvayalpati/trustudsel-cache/internal/config"
	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
	"github.com/koushikreddyvayalpati/trustudsel-cache/products"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("searchcli", flag.ContinueOnError)
	query := fs.String("query", "", "search text")
	university := fs.String("university", "", "university filter")
	city := fs.String("city", "", "city filter")
	filters := fs.String("filters", "", "comma-separated condition/selling-type filters")
	sortBy := fs.String("sort", "default", "sort option")
	recent := fs.Bool("recent", false, "print recent searches and exit")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:     cfg.StoreBackend,
		Dir:         cfg.CacheDir,
		RedisAddr:   cfg.RedisAddr,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	client := products.NewClient(products.WithBaseURL(cfg.APIBaseURL))
	loader := products.NewLoader(client, store,
		products.WithTTL(cfg.CacheTTL),
		products.WithLogger(logger),
		products.WithRecentLimit(cfg.RecentLimit),
	)

	if *recent {
		for _, term := range loader.RecentSearches(ctx) {
			fmt.Println(term)
		}
		return nil
	}

	var filterList []string
	if *filters != "" {
		filterList = strings.Split(*filters, ",")
	}
	params := products.SearchParams{
		Query:      *query,
		University: *university,
		City:       *city,
	}

	result, err := loader.Search(ctx, params, filterList, *sortBy)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	fmt.Printf("%d result(s)\n", len(result.Products))
	for _, p := range result.Products {
		fmt.Printf("  %s  %s  $%s\n", p.ID, p.Name, p.Price)
	}
	return nil
}
