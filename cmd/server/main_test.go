package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReturnsErrorCodeWhenListenFails(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_ADDRESS", "127.0.0.1:-1")

	assert.Equal(t, 1, run())
}
