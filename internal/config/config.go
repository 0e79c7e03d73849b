package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort       int           `json:"server_port"`
	AdminToken       string        `json:"-"`
	ALPRServiceURL   string        `json:"alpr_service_url"`
	ALPRTimeout      time.Duration `json:"alpr_timeout"`
	DefaultRateLimit int           `json:"default_rate_limit"`
	GlobalRateLimit  int           `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8000
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN is required")
	}

	alprURL := os.Getenv("ALPR_SERVICE_URL")
	if alprURL == "" {
		alprURL = "http://localhost:8501"
	}

	alprTimeout, _ := time.ParseDuration(os.Getenv("ALPR_TIMEOUT"))
	if alprTimeout == 0 {
		alprTimeout = 15 * time.Second
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 300 // 300 requests per minute per building
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 5000 // 5000 requests per minute per IP
	}

	return &Config{
		ServerPort:       serverPort,
		AdminToken:       adminToken,
		ALPRServiceURL:   alprURL,
		ALPRTimeout:      alprTimeout,
		DefaultRateLimit: defaultRateLimit,
		GlobalRateLimit:  globalRateLimit,
	}, nil
}
