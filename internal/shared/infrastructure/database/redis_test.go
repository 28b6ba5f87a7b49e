package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_InvalidConfig(t *testing.T) {
	cfg := RedisConfig{
		Host: "invalid-redis-host-xyz",
		Port: "6379",
	}

	client, err := NewRedis(cfg)

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.example.com", Port: "6380", DB: 1}

	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}
