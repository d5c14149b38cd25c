package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, found, err := s.Get(ctx, "menu:404")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "menu:1", []byte("a")))
		require.NoError(t, s.Set(ctx, "menu:1", []byte("b")))

		got, found, err := s.Get(ctx, "menu:1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("b"), got)
	})

	t.Run("delete exact ignores missing keys", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "menu:2", []byte("x")))
		require.NoError(t, s.Delete(ctx, "menu:2", "menu:does-not-exist"))
		require.NoError(t, s.Delete(ctx))

		_, found, err := s.Get(ctx, "menu:2")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete prefix", func(t *testing.T) {
		for _, k := range []string{
			DishKey(1, 1, 1), DishListKey(1, 1), DishKey(1, 2, 5),
			DishKey(10, 1, 1), SubMenuKey(1, 1),
		} {
			require.NoError(t, s.Set(ctx, k, []byte("v")))
		}

		require.NoError(t, s.DeletePrefix(ctx, DishMenuPrefix(1)))

		for _, gone := range []string{DishKey(1, 1, 1), DishListKey(1, 1), DishKey(1, 2, 5)} {
			_, found, err := s.Get(ctx, gone)
			require.NoError(t, err)
			assert.False(t, found, gone)
		}
		for _, kept := range []string{DishKey(10, 1, 1), SubMenuKey(1, 1)} {
			_, found, err := s.Get(ctx, kept)
			require.NoError(t, err)
			assert.True(t, found, kept)
		}
	})

	t.Run("delete prefix with no matches", func(t *testing.T) {
		assert.NoError(t, s.DeletePrefix(ctx, "submenu:999:"))
	})

	t.Run("json round trip", func(t *testing.T) {
		in := []payload{{ID: "1", Title: "Breakfast"}, {ID: "2", Title: "Lunch"}}
		require.NoError(t, SetJSON(ctx, s, MenuListKey(), in))

		out, found, err := GetJSON[[]payload](ctx, s, MenuListKey())
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("empty list is a hit", func(t *testing.T) {
		require.NoError(t, SetJSON(ctx, s, SubMenuListKey(3), []payload{}))

		out, found, err := GetJSON[[]payload](ctx, s, SubMenuListKey(3))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, out)
	})

	t.Run("undecodable payload", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "menu:broken", []byte("{not json")))

		_, found, err := GetJSON[payload](ctx, s, "menu:broken")
		assert.False(t, found)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(1000, 4, 10)
	defer s.Close()

	runStoreContract(t, s)
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	s := NewMemoryStore(10, 1, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Set(ctx, "menu:1", []byte("x")), context.Canceled)
	assert.ErrorIs(t, s.DeletePrefix(ctx, "menu:"), context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "zero capacity", mutate: func(c *Config) { c.Capacity = 0 }, wantErr: true},
		{name: "bad eviction", mutate: func(c *Config) { c.EvictionPercentage = 101 }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "memcached" }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Backend = BackendRedis; c.RedisAddr = "" }, wantErr: true},
		{name: "redis", mutate: func(c *Config) { c.Backend = BackendRedis }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				var cfgErr *ConfigError
				assert.ErrorAs(t, err, &cfgErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
