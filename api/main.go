package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/smartstock/stock-ledger/internal/auth"
	"github.com/smartstock/stock-ledger/internal/catalog"
	"github.com/smartstock/stock-ledger/internal/config"
	"github.com/smartstock/stock-ledger/internal/db"
	httpapi "github.com/smartstock/stock-ledger/internal/http"
	"github.com/smartstock/stock-ledger/internal/http/handlers"
	"github.com/smartstock/stock-ledger/internal/http/rate_limiter"
	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/redissvc"
	"github.com/smartstock/stock-ledger/internal/repo"
	"github.com/smartstock/stock-ledger/internal/seed"
)

// @title SmartStock Ledger API
// @version 1.0
// @description REST API for inventory tracking with an append-only transaction ledger.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	var store repo.Store
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		defer database.Close()
		if err := repo.Migrate(database); err != nil {
			log.Fatalf("could not run migrations: %v", err)
		}
		store = repo.NewPostgresStore(database)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		store = repo.NewMemoryStore()
	}

	var cache *redissvc.RedisService
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("could not connect to Redis, caching disabled: %v", err)
		} else {
			defer rdb.Close()
			cache = redissvc.NewRedisService(rdb)
		}
	}

	state := ledger.NewState()
	if err := state.Load(store.Inventory()); err != nil {
		log.Fatalf("could not load inventory state: %v", err)
	}
	engine := ledger.NewEngine(store, state)

	catProv := catalog.NewProvider()
	if err := catProv.Load(store.Products(), store.Categories()); err != nil {
		log.Fatalf("could not load catalog: %v", err)
	}
	views := ledger.NewViews(state, catProv)

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, store, engine); err != nil {
			log.Fatalf("could not seed demo data: %v", err)
		}
		if err := state.Load(store.Inventory()); err != nil {
			log.Fatalf("could not reload inventory state: %v", err)
		}
		if err := catProv.Load(store.Products(), store.Categories()); err != nil {
			log.Fatalf("could not reload catalog: %v", err)
		}
	}

	handlers.SetStore(store)
	handlers.SetEngine(engine)
	handlers.SetState(state)
	handlers.SetViews(views)
	handlers.SetCatalog(catProv)
	handlers.SetCache(cache)

	limiter := rate_limiter.NewRegistry(5, 10)
	go limiter.StartCleanupLoop()

	r := httpapi.NewRouter(limiter)
	log.Printf("server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
