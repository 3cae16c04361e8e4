package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"advocate_site/internal/config"
	"advocate_site/internal/disclaimer"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name    string
		store   string
		want    disclaimer.Store
		wantErr bool
	}{
		{name: "cookie", store: config.StoreCookie, want: disclaimer.NopStore{}},
		{name: "memory", store: config.StoreMemory, want: &disclaimer.MemoryStore{}},
		{name: "unknown", store: "etcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DisclaimerStore: tt.store, DisclaimerRetention: time.Hour}
			store, closeFn, err := OpenStore(context.Background(), cfg, zap.NewNop())
			require.NotNil(t, closeFn)
			defer closeFn()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
		})
	}
}

func TestLoadSite(t *testing.T) {
	site, err := LoadSite("")
	require.NoError(t, err)
	assert.NotEmpty(t, site.Expertise.Areas)

	_, err = LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown_key: 1\n"), 0o600))
	_, err = LoadSite(bad)
	assert.Error(t, err)
}

func TestNewDesk(t *testing.T) {
	site, err := LoadSite("")
	require.NoError(t, err)

	cfg := &config.Config{HomeTimezone: "Asia/Kolkata", ConsultRule: "FREQ=DAILY;BYHOUR=10;BYMINUTE=0;BYSECOND=0"}
	desk, err := NewDesk(cfg, site)
	require.NoError(t, err)
	assert.Len(t, desk.NextSlots(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 2), 2)

	cfg.HomeTimezone = "Mars/Olympus"
	_, err = NewDesk(cfg, site)
	assert.Error(t, err)
}

func TestTracksVisitors(t *testing.T) {
	tests := []struct {
		store    string
		expected bool
	}{
		{store: config.StoreCookie, expected: false},
		{store: config.StoreMemory, expected: true},
		{store: config.StoreRedis, expected: true},
		{store: config.StorePostgres, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.store, func(t *testing.T) {
			assert.Equal(t, tt.expected, TracksVisitors(&config.Config{DisclaimerStore: tt.store}))
		})
	}
}
