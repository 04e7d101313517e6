package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/resolve"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

type FactoryTestSuite struct {
	suite.Suite
	factory *catalog.Factory
	ctx     context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) SetupTest() {
	c, err := catalog.Default()
	s.Require().NoError(err)

	s.factory, err = catalog.NewFactory(&catalog.FactoryConfig{
		Catalog:     c,
		IDGenerator: idgen.NewSequential("char"),
		Listeners:   resolve.DefaultRegistry(),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *FactoryTestSuite) TestNewFactoryValidation() {
	_, err := catalog.NewFactory(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewFactory(&catalog.FactoryConfig{IDGenerator: idgen.NewSequential("x")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FactoryTestSuite) TestNewFactoryChecksListeners() {
	c, err := catalog.Load([]byte(`
skills:
  - id: spin
    name: Spin
    action_cost: 0.5
    always_hits: true
    effects:
      - type: toggle_listener
        on: self
        listener: whirlwind
`))
	s.Require().NoError(err)

	_, err = catalog.NewFactory(&catalog.FactoryConfig{
		Catalog:     c,
		IDGenerator: idgen.NewSequential("x"),
		Listeners:   resolve.DefaultRegistry(),
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FactoryTestSuite) TestNewEnemyGetsUniqueIDs() {
	first, err := s.factory.NewEnemy(s.ctx, "wolf", 3)
	s.Require().NoError(err)
	second, err := s.factory.NewEnemy(s.ctx, "wolf", 3)
	s.Require().NoError(err)

	s.Equal("char_1", first.GetID())
	s.Equal("char_2", second.GetID())
	s.Equal("Wolf", first.Name())
	s.Equal(character.Enemy, first.Kind())
	s.Equal(3, first.Level())
	s.Equal([]character.Category{character.Beast}, first.Traits().Categories)
	s.Len(first.Listeners(), 1)
	s.True(first.IsAlive())
	s.Equal(first.MaxHealth(), first.Health())
}

func (s *FactoryTestSuite) TestEnemyTraitsAreNotShared() {
	first, err := s.factory.NewEnemy(s.ctx, "lich", 10)
	s.Require().NoError(err)
	second, err := s.factory.NewEnemy(s.ctx, "lich", 10)
	s.Require().NoError(err)

	first.Traits().DropTable[0].Count = 99
	s.NotEqual(99, second.Traits().DropTable[0].Count)
}

func (s *FactoryTestSuite) TestNewEnemyErrors() {
	_, err := s.factory.NewEnemy(s.ctx, "dragon", 1)
	s.True(errors.IsNotFound(err))

	_, err = s.factory.NewEnemy(s.ctx, "wolf", 0)
	s.True(errors.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.factory.NewEnemy(ctx, "wolf", 1)
	s.True(errors.IsCanceled(err))
}

func (s *FactoryTestSuite) TestNewPlayer() {
	brom, err := s.factory.NewPlayer(s.ctx, "warrior", "Brom", 1)
	s.Require().NoError(err)
	s.Equal("Brom", brom.Name())
	s.Equal(character.Player, brom.Kind())
	s.Equal("warrior", brom.Class())
	s.Equal(character.Fury, brom.ResourceType())
	s.Equal(0.0, brom.Resource())

	mage, err := s.factory.NewPlayer(s.ctx, "mage", "", 1)
	s.Require().NoError(err)
	s.Equal("Mage", mage.Name())
	s.Equal(120.0, mage.Resource())

	_, err = s.factory.NewPlayer(s.ctx, "bard", "Lute", 1)
	s.True(errors.IsNotFound(err))
}
