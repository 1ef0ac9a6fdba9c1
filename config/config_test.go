package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("TMDB_API_KEY", "tmdb-token")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ORIGIN", "http://a.example/, http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDBBaseURL)
	assert.Equal(t, 10*time.Second, cfg.TMDBTimeout)
	assert.Equal(t, "netflixClone", cfg.DBName)
	assert.Equal(t, "jwt-netflix", cfg.CookieName)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
	assert.Contains(t, err.Error(), "MONGO_URI")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("TMDB_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
