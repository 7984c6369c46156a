package container

import (
	"context"
	"fmt"
	"sync"

	config "gitlab.com/unnchai/agro.backend/src/production/AGT.Config"
	logger "gitlab.com/unnchai/agro.backend/src/production/AGT.Logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Container manages dependencies and their lifecycle
type Container struct {
	config *config.Config
	logger *logger.Logger
	client *mongo.Client

	mu sync.Mutex
}

// IngestorContainer manages dependencies for the MQTT Ingestor service
type IngestorContainer struct {
	config *config.IngestorConfig
	logger *logger.Logger
}

// NewApiContainer creates a new container for the API service
func NewApiContainer() (*Container, error) {
	cfg, err := config.LoadApiConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load API configuration: %w", err)
	}

	log := logger.NewLogger(&cfg.Logging)

	return &Container{
		config: cfg,
		logger: log,
	}, nil
}

// NewIngestorContainer creates a new container for the MQTT Ingestor service
func NewIngestorContainer() (*IngestorContainer, error) {
	cfg, err := config.LoadIngestorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load ingestor configuration: %w", err)
	}

	log := logger.NewLogger(&cfg.Logging)

	return &IngestorContainer{
		config: cfg,
		logger: log,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConfig returns the ingestor configuration
func (c *IngestorContainer) GetConfig() *config.IngestorConfig {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetLogger returns the logger
func (c *IngestorContainer) GetLogger() *logger.Logger {
	return c.logger
}

// ConnectMongo opens the process-wide MongoDB connection and verifies it with
// a ping. The driver pools connections internally; one client is shared by
// every request for the life of the process.
func (c *Container) ConnectMongo(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Mongo.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(c.config.Mongo.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("unable to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("unable to ping MongoDB: %w", err)
	}

	c.client = client
	return nil
}

// Ping verifies the MongoDB connection is still reachable
func (c *Container) Ping(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	if client == nil {
		return fmt.Errorf("mongo client not connected")
	}
	return client.Ping(ctx, readpref.Primary())
}

// GetRecordCollection returns the sensor record collection
func (c *Container) GetRecordCollection() *mongo.Collection {
	return c.client.Database(c.config.Mongo.Database).Collection(c.config.Mongo.DataCollection)
}

// GetChatCollection returns the conversation collection
func (c *Container) GetChatCollection() *mongo.Collection {
	return c.client.Database(c.config.Mongo.Database).Collection(c.config.Mongo.ChatCollection)
}

// Shutdown gracefully shuts down the container and all its dependencies
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		if err := c.client.Disconnect(ctx); err != nil {
			c.logger.ErrorWithError(err, "Error closing MongoDB connection")
		}
		c.client = nil
	}

	c.logger.Info("Container shutdown complete")
	return nil
}

// Shutdown gracefully shuts down the ingestor container
func (c *IngestorContainer) Shutdown(ctx context.Context) error {
	c.logger.Info("Ingestor container shutdown complete")
	return nil
}
