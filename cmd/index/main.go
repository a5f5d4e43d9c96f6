package main

import (
	"context"
	"log"
	"time"

	"collabase/internal/config"
	"collabase/internal/database"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database.EnsureIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}
