package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" && os.Getenv(envPrefix+"ENV") == "" {
		return CI
	}

	switch env := os.Getenv(envPrefix + "ENV"); env {
	case "production":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

// IsDevelopment reports whether e is the development environment
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsTest reports whether e is a test or CI environment
func (e Environment) IsTest() bool {
	return e == Test || e == CI
}

// IsProduction reports whether e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}
