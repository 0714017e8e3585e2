package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/redis/go-redis/v9"

	"github.com/cardtable/hearts/internal/server"
	"github.com/cardtable/hearts/internal/server/storage"
)

// ServerCmd runs the WebSocket game server.
type ServerCmd struct {
	Config string `kong:"default='hearts.hcl',help='Path to the HCL configuration file'"`
	Debug  bool   `kong:"help='Enable debug logging (overrides the config log level)'"`
}

func (c *ServerCmd) Run() error {
	config, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}

	logger := setupLogger(c.Debug)
	if !c.Debug {
		if level, err := log.ParseLevel(config.Server.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	ttl := time.Duration(config.Session.TTLMinutes) * time.Minute
	var store storage.Store
	if config.Redis != nil {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Address,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis at %s: %w", config.Redis.Address, err)
		}
		store = storage.NewRedisStore(client, ttl)
		logger.Info("using redis session store", "addr", config.Redis.Address)
	} else {
		store = storage.NewMemoryStore(ttl, quartz.NewReal())
		logger.Info("using in-memory session store")
	}
	defer store.Close()

	sessions := server.NewSessions(store, config.Lineup(), logger)
	addr := fmt.Sprintf("%s:%d", config.Server.Address, config.Server.Port)
	srv := server.NewServer(addr, sessions, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	}
}
