package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mapgen/internal/app"
	"mapgen/internal/mapgen"
	"mapgen/internal/server"
	"mapgen/internal/terrain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := loadConfig()

	df, err := terrain.ParseDistanceFn(cfg.Distance)
	if err != nil {
		log.Fatalf("MAPGEN_DISTANCE: %v", err)
	}
	rf, err := terrain.ParseReshapingFn(cfg.Reshape)
	if err != nil {
		log.Fatalf("MAPGEN_RESHAPE: %v", err)
	}
	seed, err := strconv.ParseUint(cfg.Seed, 10, 64)
	if err != nil {
		log.Fatalf("MAPGEN_SEED: %v", err)
	}

	start := time.Now()
	m, err := mapgen.New(mapgen.FromMap(app.ParseSettings(cfg.Settings)), seed, df, rf)
	if err != nil {
		log.Fatalf("generate map: %v", err)
	}
	log.Printf("Generated %d regions (seed %d, %v/%v) in %s",
		len(m.Regions()), seed, df, rf, time.Since(start).Round(time.Millisecond))

	a := server.New(mapgen.NewStore(m), server.DefaultOptions())

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := a.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := a.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// Config holds the MAPGEN_* environment settings.
type Config struct {
	Port     string
	Seed     string
	Distance string
	Reshape  string
	Settings string
}

func loadConfig() *Config {
	return &Config{
		Port:     getEnv("MAPGEN_PORT", "8080"),
		Seed:     getEnv("MAPGEN_SEED", "12345"),
		Distance: getEnv("MAPGEN_DISTANCE", "Diagonal"),
		Reshape:  getEnv("MAPGEN_RESHAPE", "Flat"),
		Settings: getEnv("MAPGEN_SETTINGS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
