package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/okbooks/posledger/internal/config"
	"github.com/okbooks/posledger/internal/db"
	"github.com/okbooks/posledger/internal/store"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedCatalogFlag = flag.Bool("seed-catalog", false, "Insert the starter catalog when the store is empty")
	statusFlag      = flag.Bool("status", false, "Print store status after bootstrap")
)

// posledger is the composition root for the persistence core: it loads the
// environment, opens the backing store, runs the explicit schema migration,
// and guarantees the default seller profile exists. The serving layer (or
// any other collaborator) starts from an already-bootstrapped store.
func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	conn, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(conn, cfg.DatabaseDSN); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if *migrateOnlyFlag {
		log.Println("migrations completed; exiting as requested")
		return
	}

	st := store.New(conn, store.WithCatalogCacheTTL(cfg.CatalogCacheTTL))
	seller, err := st.GetSeller()
	if err != nil {
		log.Fatalf("Failed to ensure seller profile: %v", err)
	}

	if *seedCatalogFlag {
		inserted, err := st.SeedStarterCatalog()
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if inserted > 0 {
			log.Printf("seeded catalog with %d starter items", inserted)
		} else {
			log.Println("catalog not empty; seed skipped")
		}
	}

	if *statusFlag {
		count, err := st.CatalogCount()
		if err != nil {
			log.Fatalf("Failed to count catalog: %v", err)
		}
		recent, err := st.SearchInvoices("", 1)
		if err != nil {
			log.Fatalf("Failed to read ledger: %v", err)
		}
		last := "none"
		if len(recent) > 0 {
			last = recent[0].InvoiceNumber
		}
		log.Printf("env=%s seller=%q catalog_items=%d last_invoice=%s", cfg.Env, seller.ShopName, count, last)
		return
	}

	log.Printf("store bootstrapped env=%s seller_id=%d", cfg.Env, seller.ID)
}
