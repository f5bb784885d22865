package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOP_API_URL", "http://shop:8081/")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, "http://shop:8081", c.ShopAPI.BaseURL)
	assert.Equal(t, 3, c.ShopAPI.MaxRetries)
	assert.Equal(t, CartStorageRedis, c.Cart.Storage)
	assert.Equal(t, "cart_v1", c.Cart.StorageKey)
	assert.Equal(t, "cart_session", c.Cart.CookieName)
	assert.Equal(t, ImagesModeBaseURL, c.Images.Mode)
	assert.Equal(t, "http://shop:8081", c.Images.PublicBaseURL)
	assert.False(t, c.Kafka.Enabled())
	assert.Equal(t, time.Minute, c.Catalog.CacheTTL)
	assert.Equal(t, "en", c.Catalog.Locale)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHOP_API_URL", "http://shop")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("CART_STORAGE", CartStorageMemory)
	t.Setenv("CART_TTL", "1h")
	t.Setenv("IMAGES_PUBLIC_BASE_URL", "https://cdn.example.com/")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.True(t, c.Kafka.Enabled())
	assert.Equal(t, CartStorageMemory, c.Cart.Storage)
	assert.Equal(t, time.Hour, c.Cart.TTL)
	assert.Equal(t, "https://cdn.example.com", c.Images.PublicBaseURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing shop api url", env: map[string]string{}},
		{name: "bad storage", env: map[string]string{"SHOP_API_URL": "http://shop", "CART_STORAGE": "sqlite"}},
		{name: "bad duration", env: map[string]string{"SHOP_API_URL": "http://shop", "CART_TTL": "forever"}},
		{name: "minio without bucket", env: map[string]string{"SHOP_API_URL": "http://shop", "IMAGES_MODE": ImagesModeMinio}},
		{name: "bad sessions", env: map[string]string{"SHOP_API_URL": "http://shop", "CART_MAX_SESSIONS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHOP_API_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(logger.NewNopLogger())
			assert.Error(t, err)
		})
	}
}
