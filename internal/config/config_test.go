package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		db   Database
		want string
	}{
		{
			name: "com sslmode",
			db:   Database{Driver: "postgres", User: "u", Password: "p", URL: "localhost:5432/subs", SSLMode: "disable"},
			want: "postgres://u:p@localhost:5432/subs?sslmode=disable",
		},
		{
			name: "sem sslmode",
			db:   Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/subs"},
			want: "postgres://u:p@db:5432/subs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildDSN(tt.db))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Reports:        Reports{MaxPeriods: 36, DefaultPeriods: 12},
			ReportSnapshot: ReportSnapshot{MonthLookBack: 1},
		}
	}

	t.Run("configuração válida", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("períodos padrão acima do máximo", func(t *testing.T) {
		cfg := valid()
		cfg.Reports.DefaultPeriods = 40
		assert.Error(t, cfg.Validate())
	})

	t.Run("sync do paddle sem chave", func(t *testing.T) {
		cfg := valid()
		cfg.PaddleSync.Enabled = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("lookback de snapshot corrigido para 1", func(t *testing.T) {
		cfg := valid()
		cfg.ReportSnapshot.MonthLookBack = 0
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 1, cfg.ReportSnapshot.MonthLookBack)
	})
}

func TestCache_Enabled(t *testing.T) {
	assert.False(t, Cache{}.Enabled())
	assert.False(t, Cache{RedisURL: "redis://localhost:6379/0"}.Enabled())
	assert.True(t, Cache{RedisURL: "redis://localhost:6379/0", TTLSeconds: 60}.Enabled())
	assert.Equal(t, "1m0s", Cache{TTLSeconds: 60}.TTL().String())
}
