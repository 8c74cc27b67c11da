package players

import (
	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/services/leveling"
	"github.com/mcoot/playerroster/internal/services/validation"
)

// ApplyPatch writes the supplied fields onto player in the order
// name, title, race, profession, experience, birthday, banned.
//
// Each field is checked and written before the next is looked at, so on
// error the fields before the failing one have already been changed on
// player. Callers that need all-or-nothing must discard player on error.
func ApplyPatch(player *model.Player, patch model.PlayerInput) error {
	if patch.Name != nil {
		if err := validation.CheckName(*patch.Name); err != nil {
			return err
		}
		player.Name = *patch.Name
	}

	if patch.Title != nil {
		if err := validation.CheckTitle(*patch.Title); err != nil {
			return err
		}
		player.Title = *patch.Title
	}

	if patch.Race != nil {
		player.Race = *patch.Race
	}

	if patch.Profession != nil {
		player.Profession = *patch.Profession
	}

	if patch.Experience != nil {
		if err := validation.CheckUpdateExperience(*patch.Experience); err != nil {
			return err
		}
		player.Experience = *patch.Experience
		player.Level, player.UntilNextLevel = leveling.Apply(player.Experience)
	}

	if patch.Birthday != nil {
		if err := validation.CheckBirthday(*patch.Birthday); err != nil {
			return err
		}
		player.Birthday = patch.Birthday.UTC()
	}

	if patch.Banned != nil {
		player.Banned = *patch.Banned
	}

	return nil
}
