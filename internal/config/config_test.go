package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "hrms")
	t.Setenv("DB_NAME", "hrms")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	s, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "5432", s.DBPort)
	assert.Equal(t, 30*time.Minute, s.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, s.RefreshTokenTTL)
	assert.Equal(t, []string{"*"}, s.CORSAllowOrigins)
	assert.Equal(t, "hrms.audit", s.KafkaAuditTopic)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_OriginsAndTTLs(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "15")

	s, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.CORSAllowOrigins)
	assert.Equal(t, 15*time.Minute, s.AccessTokenTTL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("REFRESH_TOKEN_TTL_MINUTES", "soon")

	_, err := Load()
	assert.Error(t, err)
}
