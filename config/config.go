package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds the environment-driven settings for the service.
type Config struct {
	MongoURI    string
	Database    string
	TablePrefix string
	Port        string
}

func Load() (Config, error) {
	cfg := Config{
		MongoURI:    os.Getenv("MONGOURI"),
		Database:    os.Getenv("DB"),
		TablePrefix: os.Getenv("TABLE_PREFIX"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGOURI not set in environment")
	}
	if cfg.Database == "" {
		cfg.Database = "realty"
	}
	if cfg.TablePrefix == "" {
		cfg.TablePrefix = "dev-"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

func ConnectDB(cfg Config) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	return client, nil
}
