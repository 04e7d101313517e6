package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

// FactoryConfig holds the dependencies of a Factory.
type FactoryConfig struct {
	Catalog     *Catalog
	IDGenerator idgen.Generator
	// Listeners, when set, is checked against every listener the catalog
	// names.
	Listeners *resolve.Registry
}

// Validate validates the config
func (cfg *FactoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Factory builds characters from catalog templates. Every character gets a
// fresh id, so two wolves in one battle are told apart.
type Factory struct {
	catalog *Catalog
	idGen   idgen.Generator
}

var _ battle.EnemyFactory = (*Factory)(nil)

// NewFactory creates a factory over cfg.Catalog.
func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if cfg.Listeners != nil {
		if err := cfg.Catalog.CheckListeners(cfg.Listeners); err != nil {
			return nil, errors.Wrap(err, "catalog names unknown listeners")
		}
	}

	return &Factory{catalog: cfg.Catalog, idGen: cfg.IDGenerator}, nil
}

// Catalog returns the catalog the factory builds from.
func (f *Factory) Catalog() *Catalog { return f.catalog }

// NewEnemy implements battle.EnemyFactory.
func (f *Factory) NewEnemy(ctx context.Context, id string, level int) (*character.Character, error) {
	if err := errors.FromContext(ctx); err != nil {
		return nil, err
	}
	t, err := f.catalog.Enemy(id)
	if err != nil {
		return nil, err
	}

	c, err := character.New(t.Config(f.idGen.Generate(), "", level))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", id)
	}
	slog.Debug("created enemy", "template", id, "id", c.GetID(), "level", level)
	return c, nil
}

// NewPlayer builds a player of classID. An empty name uses the class name.
func (f *Factory) NewPlayer(ctx context.Context, classID, name string, level int) (*character.Character, error) {
	if err := errors.FromContext(ctx); err != nil {
		return nil, err
	}
	t, err := f.catalog.Class(classID)
	if err != nil {
		return nil, err
	}

	c, err := character.New(t.Config(f.idGen.Generate(), name, level))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", classID)
	}
	slog.Debug("created player", "class", classID, "id", c.GetID(), "level", level)
	return c, nil
}
