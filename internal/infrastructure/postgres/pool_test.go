package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/pkg/config"
)

func TestWithIPv4Host(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@127.0.0.1:5432/db",
		withIPv4Host("postgres://u:p@127.0.0.1/db"))
	// Literal IPv6 o URL inválida: se devuelve sin cambios.
	assert.Equal(t, "postgres://u:p@[::1]:5432/db", withIPv4Host("postgres://u:p@[::1]:5432/db"))
	assert.Equal(t, "::no-url", withIPv4Host("::no-url"))
}

func TestNewPoolConfig(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "127.0.0.1",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "ordenes",
		SSLMode:  "disable",
		MaxConns: 1,
	}
	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(1), pc.MaxConns)
	assert.Equal(t, int32(1), pc.MinConns)
	assert.Equal(t, "p@ss/word", pc.ConnConfig.Password)
	assert.Equal(t, "ordenes", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect)

	cfg.MaxConns = 10
	cfg.ForceIPv4 = true
	pc, err = newPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "127.0.0.1", pc.ConnConfig.Host)
}
