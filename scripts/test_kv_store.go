package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/frontandrew/drivesure/internal/pkg/config"
	"github.com/frontandrew/drivesure/internal/pkg/logger"
	"github.com/frontandrew/drivesure/internal/repository/cached"
	"github.com/frontandrew/drivesure/internal/repository/kv"
)

// Проверка хранилища, выбранного через STORAGE_DRIVER (и STORAGE_CACHE)
// go run ./scripts/test_kv_store.go
func main() {
	fmt.Println("=========================================")
	fmt.Println("KV Store Test")
	fmt.Println("=========================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ Failed to open %s store: %v\n", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	if cfg.Storage.Cache == "redis" {
		cache, err := kv.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			fmt.Printf("❌ Failed to connect to Redis cache: %v\n", err)
			os.Exit(1)
		}
		store = cached.NewStore(store, cache, logger.NewDevelopment())
	}
	defer store.Close()

	fmt.Printf("✅ Opened %s store (cache: %q)\n", cfg.Storage.Driver, cfg.Storage.Cache)
	fmt.Println()

	testKey := "drivesure_smoke_test"
	testValue := []byte(`{"hello":"Lagos"}`)

	// Test 1: SET/GET
	fmt.Println("Test 1: SET/GET")
	if err := store.Set(ctx, testKey, testValue); err != nil {
		fmt.Printf("❌ SET failed: %v\n", err)
		os.Exit(1)
	}
	value, err := store.Get(ctx, testKey)
	if err != nil {
		fmt.Printf("❌ GET failed: %v\n", err)
		os.Exit(1)
	}
	if !bytes.Equal(value, testValue) {
		fmt.Printf("❌ GET returned wrong value: %s\n", value)
		os.Exit(1)
	}
	fmt.Printf("✅ GET %s = %s\n", testKey, value)
	fmt.Println()

	// Test 2: overwrite
	fmt.Println("Test 2: overwrite")
	updated := []byte(`{"hello":"Eko"}`)
	if err := store.Set(ctx, testKey, updated); err != nil {
		fmt.Printf("❌ SET failed: %v\n", err)
		os.Exit(1)
	}
	value, err = store.Get(ctx, testKey)
	if err != nil || !bytes.Equal(value, updated) {
		fmt.Printf("❌ overwrite not visible: %s (%v)\n", value, err)
		os.Exit(1)
	}
	fmt.Printf("✅ GET %s = %s\n", testKey, value)
	fmt.Println()

	// Test 3: DELETE
	fmt.Println("Test 3: DELETE (cleanup)")
	if err := store.Delete(ctx, testKey); err != nil {
		fmt.Printf("❌ DELETE failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := store.Get(ctx, testKey); !errors.Is(err, kv.ErrNotFound) {
		fmt.Printf("❌ Key should not exist, got: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Verified key deleted")
	fmt.Println()

	fmt.Println("=========================================")
	fmt.Println("✅ All KV store tests passed!")
	fmt.Println("=========================================")
}
