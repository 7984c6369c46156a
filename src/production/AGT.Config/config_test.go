package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("MONGO_CONNECTION_STRING", "mongodb://localhost:27017")
	t.Setenv("MODEL", "llama-3.3-70b-versatile")
	t.Setenv("OPENAI_API", "gsk_test_key")
	t.Setenv("BASE_URL_GROQ", "https://api.groq.com/openai/v1")
}

func TestLoadApiConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadApiConfig()
	if err != nil {
		t.Fatalf("LoadApiConfig: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "Unnchai" {
		t.Errorf("expected default database Unnchai, got %s", cfg.Mongo.Database)
	}
	if cfg.Mongo.DataCollection != "Data" || cfg.Mongo.ChatCollection != "Chat" {
		t.Errorf("unexpected default collections: %s / %s", cfg.Mongo.DataCollection, cfg.Mongo.ChatCollection)
	}
	if cfg.Logging.Output != "log.txt" {
		t.Errorf("expected default log output log.txt, got %s", cfg.Logging.Output)
	}
}

func TestLoadApiConfigReadsFixedNames(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadApiConfig()
	if err != nil {
		t.Fatalf("LoadApiConfig: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("MONGO_CONNECTION_STRING not honored: %s", cfg.Mongo.URI)
	}
	if cfg.AI.Model != "llama-3.3-70b-versatile" {
		t.Errorf("MODEL not honored: %s", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "gsk_test_key" {
		t.Errorf("OPENAI_API not honored")
	}
	if cfg.AI.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("BASE_URL_GROQ not honored: %s", cfg.AI.BaseURL)
	}
}

func TestLoadApiConfigMissingRequired(t *testing.T) {
	cases := []string{"MONGO_CONNECTION_STRING", "MODEL", "OPENAI_API", "BASE_URL_GROQ"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")
			if _, err := LoadApiConfig(); err == nil {
				t.Fatalf("expected error when %s is unset", missing)
			}
		})
	}
}

func TestLoadApiConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("AI_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := LoadApiConfig()
	if err != nil {
		t.Fatalf("LoadApiConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("PORT override not honored: %s", cfg.Server.Port)
	}
	if cfg.AI.Timeout != 15*time.Second {
		t.Errorf("AI_TIMEOUT override not honored: %v", cfg.AI.Timeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("CORS_ALLOWED_ORIGINS not parsed: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadIngestorConfigDefaults(t *testing.T) {
	cfg, err := LoadIngestorConfig()
	if err != nil {
		t.Fatalf("LoadIngestorConfig: %v", err)
	}

	if cfg.MQTT.Topic != "stations/+/readings" {
		t.Errorf("unexpected default topic: %s", cfg.MQTT.Topic)
	}
	if cfg.MQTT.BatchSize != 200 {
		t.Errorf("unexpected default batch size: %d", cfg.MQTT.BatchSize)
	}
	if cfg.ApiServiceURL != "http://localhost:5000" {
		t.Errorf("unexpected default api service url: %s", cfg.ApiServiceURL)
	}
}
