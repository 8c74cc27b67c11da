package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerroster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newPlayer(name string) *model.Player {
	return &model.Player{
		Name:       name,
		Title:      "Tester",
		Race:       model.RaceElf,
		Profession: model.ProfessionDruid,
		Birthday:   time.Date(2040, 5, 5, 0, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAssignsIDs() {
	a := s.newPlayer("Alice")
	b := s.newPlayer("Bob")

	s.Require().NoError(s.storage.Save(s.ctx, a))
	s.Require().NoError(s.storage.Save(s.ctx, b))

	s.Equal(model.PlayerID(1), a.ID)
	s.Equal(model.PlayerID(2), b.ID)
}

func (s *StorageSuite) TestSaveAndFindByID() {
	player := s.newPlayer("Alice")
	s.Require().NoError(s.storage.Save(s.ctx, player))

	retrieved, err := s.storage.FindByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player, retrieved)
}

func (s *StorageSuite) TestFindByIDNotFound() {
	_, err := s.storage.FindByID(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveUpdatesExisting() {
	player := s.newPlayer("Alice")
	s.Require().NoError(s.storage.Save(s.ctx, player))

	player.Name = "Alicia"
	s.Require().NoError(s.storage.Save(s.ctx, player))

	retrieved, err := s.storage.FindByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("Alicia", retrieved.Name)

	all, err := s.storage.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StorageSuite) TestReturnedPlayersAreCopies() {
	player := s.newPlayer("Alice")
	s.Require().NoError(s.storage.Save(s.ctx, player))

	player.Name = "changed after save"
	retrieved, _ := s.storage.FindByID(s.ctx, player.ID)
	s.Equal("Alice", retrieved.Name)

	retrieved.Name = "changed after load"
	again, _ := s.storage.FindByID(s.ctx, player.ID)
	s.Equal("Alice", again.Name)
}

func (s *StorageSuite) TestFindAllIsOrderedByID() {
	for _, name := range []string{"C", "A", "B"} {
		s.Require().NoError(s.storage.Save(s.ctx, s.newPlayer(name)))
	}

	all, err := s.storage.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	for i, p := range all {
		s.Equal(model.PlayerID(i+1), p.ID)
	}
}

func (s *StorageSuite) TestDelete() {
	player := s.newPlayer("Alice")
	s.Require().NoError(s.storage.Save(s.ctx, player))

	s.Require().NoError(s.storage.Delete(s.ctx, player.ID))

	_, err := s.storage.FindByID(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	s.ErrorIs(s.storage.Delete(s.ctx, player.ID), model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestIDsAreNotReused() {
	first := s.newPlayer("Alice")
	s.Require().NoError(s.storage.Save(s.ctx, first))
	s.Require().NoError(s.storage.Delete(s.ctx, first.ID))

	second := s.newPlayer("Bob")
	s.Require().NoError(s.storage.Save(s.ctx, second))
	s.Equal(model.PlayerID(2), second.ID)
}
