package database

import (
	"testing"
	"time"

	"github.com/hugohenrick/erp-cooperativas/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewPostgresConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Database.MaxLifetime = 120
	cfg.Database.MaxConnections = 15

	pc := NewPostgresConfig(cfg)

	assert.Equal(t, cfg.ConnectionString(), pc.ConnString)
	assert.Equal(t, int32(15), pc.MaxConnections)
	assert.Equal(t, int32(2), pc.MinConnections)
	assert.Equal(t, 2*time.Minute, pc.MaxConnLifetime)
}
