package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stadium-api/internal/config"
	"stadium-api/internal/models"
	"stadium-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

func main() {
	file := flag.String("file", "", "Path to the stadiums JSON file to import")
	toPostgres := flag.Bool("postgres", false, "Load the catalog into the stadiums table (DB_SOURCE)")
	toRedis := flag.Bool("redis", false, "Store the catalog document in Redis (REDIS_URL, REDIS_KEY)")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}
	if !*toPostgres && !*toRedis {
		fmt.Println("Error: at least one of --postgres or --redis is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	ctx := context.Background()

	catalog, raw, err := readCatalog(ctx, *file)
	if err != nil {
		fmt.Printf("Error parsing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d stadiums\n", len(catalog.Stadiums))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *toPostgres {
		if err := importPostgres(ctx, cfg.DBSource, catalog); err != nil {
			fmt.Printf("Error importing into postgres: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully imported %d stadiums into postgres\n", len(catalog.Stadiums))
	}

	if *toRedis {
		if err := importRedis(ctx, cfg.RedisURL, cfg.RedisKey, raw); err != nil {
			fmt.Printf("Error importing into redis: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully stored catalog under redis key %s\n", cfg.RedisKey)
	}
}

// readCatalog validates the file with the same rules the API applies and
// returns both the decoded catalog and the original bytes.
func readCatalog(ctx context.Context, path string) (models.Catalog, []byte, error) {
	catalog, err := repository.NewFileLoader(path).LoadCatalog(ctx)
	if err != nil {
		return models.Catalog{}, nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, nil, fmt.Errorf("failed to read file: %w", err)
	}

	if dup := duplicateID(catalog); dup != "" {
		return models.Catalog{}, nil, fmt.Errorf("duplicate stadium id %q", dup)
	}
	return catalog, raw, nil
}

func duplicateID(catalog models.Catalog) string {
	seen := make(map[string]struct{}, len(catalog.Stadiums))
	for _, s := range catalog.Stadiums {
		if _, ok := seen[s.ID]; ok {
			return s.ID
		}
		seen[s.ID] = struct{}{}
	}
	return ""
}

func importPostgres(ctx context.Context, dsn string, catalog models.Catalog) error {
	if dsn == "" {
		return fmt.Errorf("DB_SOURCE is not set")
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close(ctx)

	// Ensure table exists
	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if err := replaceStadiums(ctx, conn, catalog); err != nil {
		return err
	}

	return verifyImport(ctx, conn, len(catalog.Stadiums))
}

// replaceStadiums swaps the table contents in one transaction.
func replaceStadiums(ctx context.Context, conn *pgx.Conn, catalog models.Catalog) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE stadiums"); err != nil {
		return fmt.Errorf("failed to truncate table: %w", err)
	}

	// Use CopyFrom for bulk insert
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"stadiums"}, repository.CopyColumns, repository.CopyRows(catalog)); err != nil {
		return fmt.Errorf("failed to copy stadiums: %w", err)
	}

	return tx.Commit(ctx)
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM stadiums").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Read everything back through the API loader
	catalog, err := repository.NewPostgresLoader(conn).LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to read back catalog: %w", err)
	}

	fmt.Printf("Read back %d stadiums\n", len(catalog.Stadiums))
	return nil
}

func importRedis(ctx context.Context, url, key string, raw []byte) error {
	if url == "" {
		return fmt.Errorf("REDIS_URL is not set")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	if err := client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	// Read it back the way the API does
	catalog, err := repository.NewRedisLoader(client, key).LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to read back catalog: %w", err)
	}

	fmt.Printf("Read back %d stadiums\n", len(catalog.Stadiums))
	return nil
}
