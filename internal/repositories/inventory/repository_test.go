package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every
// implementation.
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() inventory.Repository
	repo    inventory.Repository
	ctx     context.Context
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() inventory.Repository { return inventory.NewInMemory() },
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() inventory.Repository {
		r := testutils.NewTestRedis(s.T())
		repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: r.Client})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestEmptyInventory() {
	out, err := s.repo.Get(s.ctx, &inventory.GetInput{OwnerID: "party-1"})
	s.Require().NoError(err)
	s.Equal("party-1", out.OwnerID)
	s.Empty(out.Items)
}

func (s *RepositoryTestSuite) TestAddAndRemove() {
	added, err := s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "smoke_bomb", Count: 2})
	s.Require().NoError(err)
	s.Equal(2, added.Count)

	added, err = s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "smoke_bomb", Count: 1})
	s.Require().NoError(err)
	s.Equal(3, added.Count)

	_, err = s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "bone", Count: 4})
	s.Require().NoError(err)

	removed, err := s.repo.Remove(s.ctx, &inventory.RemoveInput{OwnerID: "party-1", Item: "smoke_bomb", Count: 2})
	s.Require().NoError(err)
	s.Equal(1, removed.Count)

	out, err := s.repo.Get(s.ctx, &inventory.GetInput{OwnerID: "party-1"})
	s.Require().NoError(err)
	s.Equal(map[string]int{"smoke_bomb": 1, "bone": 4}, out.Items)
}

func (s *RepositoryTestSuite) TestRemoveLastDropsItem() {
	_, err := s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "bone", Count: 1})
	s.Require().NoError(err)

	removed, err := s.repo.Remove(s.ctx, &inventory.RemoveInput{OwnerID: "party-1", Item: "bone", Count: 1})
	s.Require().NoError(err)
	s.Equal(0, removed.Count)

	out, err := s.repo.Get(s.ctx, &inventory.GetInput{OwnerID: "party-1"})
	s.Require().NoError(err)
	s.NotContains(out.Items, "bone")
}

func (s *RepositoryTestSuite) TestRemoveMoreThanHeld() {
	_, err := s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "bone", Count: 1})
	s.Require().NoError(err)

	_, err = s.repo.Remove(s.ctx, &inventory.RemoveInput{OwnerID: "party-1", Item: "bone", Count: 2})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.repo.Remove(s.ctx, &inventory.RemoveInput{OwnerID: "party-1", Item: "elixir", Count: 1})
	s.True(errors.IsFailedPrecondition(err))

	out, err := s.repo.Get(s.ctx, &inventory.GetInput{OwnerID: "party-1"})
	s.Require().NoError(err)
	s.Equal(1, out.Items["bone"])
}

func (s *RepositoryTestSuite) TestOwnersAreSeparate() {
	_, err := s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: "party-1", Item: "bone", Count: 1})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &inventory.GetInput{OwnerID: "party-2"})
	s.Require().NoError(err)
	s.Empty(out.Items)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, &inventory.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	testCases := []struct {
		name  string
		owner string
		item  string
		count int
	}{
		{name: "no owner", item: "bone", count: 1},
		{name: "no item", owner: "party-1", count: 1},
		{name: "zero count", owner: "party-1", item: "bone"},
		{name: "negative count", owner: "party-1", item: "bone", count: -2},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Add(s.ctx, &inventory.AddInput{OwnerID: tc.owner, Item: tc.item, Count: tc.count})
			s.True(errors.IsInvalidArgument(err))
			_, err = s.repo.Remove(s.ctx, &inventory.RemoveInput{OwnerID: tc.owner, Item: tc.item, Count: tc.count})
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err = s.repo.Add(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := inventory.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = inventory.NewRedis(&inventory.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
