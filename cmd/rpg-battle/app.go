package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/inventory"
)

// app holds the wired dependencies a command works with.
type app struct {
	catalog *catalog.Catalog
	factory *catalog.Factory
	service battle.Service
	items   inventory.Repository
	client  redis.Client
}

// newApp wires the catalog, the stores and the battle service from c.
func newApp(ctx context.Context, c *config.Config) (*app, error) {
	if c == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	cat, err := catalog.Open(c.CatalogPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	listeners := resolve.DefaultRegistry()
	factory, err := catalog.NewFactory(&catalog.FactoryConfig{
		Catalog:     cat,
		IDGenerator: idgen.NewSequential("char"),
		Listeners:   listeners,
	})
	if err != nil {
		return nil, err
	}

	a := &app{catalog: cat, factory: factory}

	var reports battlereport.Repository
	if c.RedisAddr != "" {
		client, err := redis.Connect(ctx, c.RedisAddr, &redis.Options{DialTimeout: 2 * time.Second})
		if err != nil {
			return nil, err
		}
		a.client = client

		reports, err = battlereport.NewRedis(&battlereport.RedisConfig{
			Client: client,
			TTL:    c.ReportTTL,
		})
		if err != nil {
			a.close()
			return nil, err
		}
		a.items, err = inventory.NewRedis(&inventory.RedisConfig{Client: client})
		if err != nil {
			a.close()
			return nil, err
		}
		slog.Debug("Using redis stores", "addr", c.RedisAddr)
	} else {
		reports = battlereport.NewInMemory(nil)
		a.items = inventory.NewInMemory()
	}

	a.service, err = battle.NewOrchestrator(&battle.Config{
		IDGenerator:  idgen.NewUUID("battle"),
		EnemyFactory: factory,
		Repository:   reports,
		Listeners:    listeners,
		BossDrops:    cat.BossDrops(),
		MaxRounds:    c.MaxRounds,
		Logger:       slog.Default(),
	})
	if err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func (a *app) close() {
	if a.client == nil {
		return
	}
	if err := a.client.Close(); err != nil {
		slog.Warn("Failed to close redis client", "error", err)
	}
}
