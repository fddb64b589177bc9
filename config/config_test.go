package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anmol-virk/blitzgramm-backend/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")

	cfg := config.Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "blitzgramm", cfg.DBName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "blitzgramm_test")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "blitzgramm_test", cfg.DBName)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
