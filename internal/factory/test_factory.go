package factory

import (
	"context"
	"time"

	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/storage/memory"
	"github.com/mcoot/playerroster/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	Memory *memory.Storage
}

// NewTestApp creates an App backed by in-memory storage and a no-op logger
func NewTestApp() *TestApp {
	store := memory.New()
	return &TestApp{
		App:    newWithDependencies(store, testutil.NopLogger()),
		Memory: store,
	}
}

// SeedRoster creates a small, varied roster through the service and returns it in creation order
func (t *TestApp) SeedRoster(ctx context.Context) ([]*model.Player, error) {
	roster := []struct {
		name       string
		title      string
		race       model.Race
		profession model.Profession
		birthday   time.Time
		banned     bool
		experience int
	}{
		{"Ниус", "Бастард", model.RaceHobbit, model.ProfessionRogue, time.Date(2010, 10, 3, 0, 0, 0, 0, time.UTC), false, 33},
		{"Эззэссэль", "Шипящая", model.RaceDwarf, model.ProfessionCleric, time.Date(2006, 2, 28, 0, 0, 0, 0, time.UTC), true, 3000},
		{"Бэлан", "Тарковый", model.RaceDwarf, model.ProfessionPaladin, time.Date(2008, 2, 25, 0, 0, 0, 0, time.UTC), false, 29500},
		{"Элеонора", "Бабушка", model.RaceHuman, model.ProfessionSorcerer, time.Date(2006, 1, 7, 0, 0, 0, 0, time.UTC), true, 174989},
		{"Эман", "Ухастый Летун", model.RaceElf, model.ProfessionWarlock, time.Date(2004, 6, 4, 0, 0, 0, 0, time.UTC), false, 804000},
		{"Талан", "Рожденный без страха", model.RaceGiant, model.ProfessionDruid, time.Date(2005, 5, 15, 0, 0, 0, 0, time.UTC), false, 49003},
	}

	created := make([]*model.Player, 0, len(roster))
	for _, r := range roster {
		p, err := t.PlayerService.Create(ctx, model.PlayerInput{
			Name:       &r.name,
			Title:      &r.title,
			Race:       &r.race,
			Profession: &r.profession,
			Birthday:   &r.birthday,
			Banned:     &r.banned,
			Experience: &r.experience,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, p)
	}
	return created, nil
}
