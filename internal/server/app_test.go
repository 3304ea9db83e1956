package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Port = 0
	c.Env = "test"
	c.BcryptCost = 4
	return c
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig())

	require.NoError(t, err)
	assert.NotNil(t, app.logger)
	assert.NotNil(t, app.userService)
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{name: "unknown log backend", modify: func(c *config.Config) { c.LogBackend = "zap" }},
		{name: "bad bcrypt cost", modify: func(c *config.Config) { c.BcryptCost = 99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig()
			tt.modify(c)

			_, err := NewApp(c)
			assert.Error(t, err)
		})
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}

func TestApp_RunStopsOnListenError(t *testing.T) {
	c := testConfig()
	c.Port = 99999

	app, err := NewApp(c)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after listen error")
	}
}
