package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerroster/internal/model"
)

type StoreSuite struct {
	suite.Suite
	path  string
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "roster.db")
	store, err := OpenSQLite(s.path)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreSuite) newPlayer(name string, exp int) *model.Player {
	return &model.Player{
		Name:           name,
		Title:          "Archivist",
		Race:           model.RaceElf,
		Profession:     model.ProfessionSorcerer,
		Birthday:       time.Date(2111, 3, 4, 12, 30, 0, 0, time.UTC),
		Banned:         true,
		Experience:     exp,
		Level:          1,
		UntilNextLevel: 300 - exp,
	}
}

func (s *StoreSuite) TestSaveAssignsIDs() {
	first := s.newPlayer("Ann", 100)
	second := s.newPlayer("Bob", 150)

	s.Require().NoError(s.store.Save(s.ctx, first))
	s.Require().NoError(s.store.Save(s.ctx, second))

	s.Equal(model.PlayerID(1), first.ID)
	s.Equal(model.PlayerID(2), second.ID)
}

func (s *StoreSuite) TestFindByIDRoundTrip() {
	player := s.newPlayer("Ann", 100)
	s.Require().NoError(s.store.Save(s.ctx, player))

	got, err := s.store.FindByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player, got)
}

func (s *StoreSuite) TestFindByIDNotFound() {
	_, err := s.store.FindByID(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StoreSuite) TestSaveUpdatesExisting() {
	player := s.newPlayer("Ann", 100)
	s.Require().NoError(s.store.Save(s.ctx, player))

	player.Name = "Anna"
	player.Banned = false
	player.Experience = 300
	player.Level = 2
	player.UntilNextLevel = 300
	s.Require().NoError(s.store.Save(s.ctx, player))

	got, err := s.store.FindByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("Anna", got.Name)
	s.False(got.Banned)
	s.Equal(2, got.Level)

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StoreSuite) TestSaveWithUnknownIDInserts() {
	player := s.newPlayer("Ann", 100)
	player.ID = 7
	s.Require().NoError(s.store.Save(s.ctx, player))

	got, err := s.store.FindByID(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal("Ann", got.Name)

	next := s.newPlayer("Bob", 0)
	s.Require().NoError(s.store.Save(s.ctx, next))
	s.Equal(model.PlayerID(8), next.ID)
}

func (s *StoreSuite) TestFindAllOrderedByID() {
	for _, name := range []string{"Cid", "Ann", "Bob"} {
		s.Require().NoError(s.store.Save(s.ctx, s.newPlayer(name, 10)))
	}

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Cid", all[0].Name)
	s.Equal("Ann", all[1].Name)
	s.Equal("Bob", all[2].Name)
}

func (s *StoreSuite) TestFindAllEmpty() {
	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

func (s *StoreSuite) TestDelete() {
	player := s.newPlayer("Ann", 100)
	s.Require().NoError(s.store.Save(s.ctx, player))

	s.Require().NoError(s.store.Delete(s.ctx, player.ID))

	_, err := s.store.FindByID(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StoreSuite) TestDeleteNotFound() {
	s.ErrorIs(s.store.Delete(s.ctx, 99), model.ErrPlayerNotFound)
}

func (s *StoreSuite) TestReopenKeepsDataAndSkipsApplied() {
	player := s.newPlayer("Ann", 100)
	s.Require().NoError(s.store.Save(s.ctx, player))
	s.Require().NoError(s.store.Close())

	reopened, err := OpenSQLite(s.path)
	s.Require().NoError(err)
	s.store = reopened

	var applied int
	s.Require().NoError(reopened.db.QueryRow("SELECT COUNT(1) FROM schema_migrations").Scan(&applied))
	s.Equal(1, applied)

	got, err := reopened.FindByID(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("Ann", got.Name)
}

func TestOpenSQLiteInMemory(t *testing.T) {
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	player := &model.Player{Name: "Ann", Title: "Lady", Race: model.RaceHuman, Profession: model.ProfessionWarrior,
		Birthday: time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Save(context.Background(), player))

	got, err := store.FindByID(context.Background(), player.ID)
	require.NoError(t, err)
	assert.Equal(t, player.Birthday, got.Birthday)
}

func TestOpenRequiresLocation(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)

	_, err = OpenPostgres("", PoolConfig{})
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	query := "UPDATE players SET name = ?, title = ? WHERE id = ?"

	assert.Equal(t, query, SQLite.Rebind(query))
	assert.Equal(t, "UPDATE players SET name = $1, title = $2 WHERE id = $3", Postgres.Rebind(query))
}

func TestDialectSequenceSync(t *testing.T) {
	assert.Empty(t, SQLite.syncSequence)
	assert.Contains(t, Postgres.syncSequence, "setval(pg_get_serial_sequence('players', 'id')")
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE t (id INT);\n-- +migrate Down\nDROP TABLE t;\n"
	assert.Equal(t, "\nCREATE TABLE t (id INT);\n", extractUpMigration(content))
	assert.Equal(t, "SELECT 1;", extractUpMigration("SELECT 1;"))
}
