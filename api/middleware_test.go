package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	rl := newRateLimiter(50*time.Millisecond, 3)

	// Three requests pass, the fourth is blocked
	for i := 0; i < 3; i++ {
		assert.True(t, rl.allow("1.2.3.4"), "request %d", i+1)
	}
	assert.False(t, rl.allow("1.2.3.4"))

	// A different identifier has its own window
	assert.True(t, rl.allow("5.6.7.8"))

	// After the window passes the counter resets
	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.allow("1.2.3.4"))
}

func TestClientIdentifier(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:52100"
	assert.Equal(t, "10.0.0.1", clientIdentifier(r))

	r.Header.Set("X-Real-Ip", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", clientIdentifier(r))

	// Forwarded-for wins, first hop only
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIdentifier(r))
}
