package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/playerroster/internal/model"
)

func ptr[T any](v T) *T { return &v }

func validInput() *model.PlayerInput {
	return &model.PlayerInput{
		Name:       ptr("Ann"),
		Title:      ptr("Lady"),
		Race:       ptr(model.RaceHuman),
		Profession: ptr(model.ProfessionWarrior),
		Birthday:   ptr(time.Date(2050, time.March, 1, 0, 0, 0, 0, time.UTC)),
		Experience: ptr(0),
	}
}

func TestValidInput(t *testing.T) {
	assert.True(t, IsValid(validInput()))
	assert.NoError(t, Validate(validInput()))
}

func TestNilInputIsInvalid(t *testing.T) {
	assert.False(t, IsValid(nil))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *model.PlayerInput)
		field  string
	}{
		{"missing race", func(in *model.PlayerInput) { in.Race = nil }, "race"},
		{"missing profession", func(in *model.PlayerInput) { in.Profession = nil }, "profession"},
		{"missing name", func(in *model.PlayerInput) { in.Name = nil }, "name"},
		{"long name", func(in *model.PlayerInput) { in.Name = ptr(strings.Repeat("a", 13)) }, "name"},
		{"missing title", func(in *model.PlayerInput) { in.Title = nil }, "title"},
		{"long title", func(in *model.PlayerInput) { in.Title = ptr(strings.Repeat("t", 31)) }, "title"},
		{"missing experience", func(in *model.PlayerInput) { in.Experience = nil }, "experience"},
		{"negative experience", func(in *model.PlayerInput) { in.Experience = ptr(-1) }, "experience"},
		{"too much experience", func(in *model.PlayerInput) { in.Experience = ptr(MaxExperience + 1) }, "experience"},
		{"missing birthday", func(in *model.PlayerInput) { in.Birthday = nil }, "birthday"},
		{"birthday too early", func(in *model.PlayerInput) { in.Birthday = ptr(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)) }, "birthday"},
		{"birthday too late", func(in *model.PlayerInput) { in.Birthday = ptr(time.Date(3001, 1, 1, 0, 0, 0, 0, time.UTC)) }, "birthday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := Validate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidPlayer)

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.False(t, IsValid(in))
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	in := validInput()
	in.Name = ptr(strings.Repeat("n", MaxNameLength))
	in.Title = ptr(strings.Repeat("t", MaxTitleLength))
	in.Experience = ptr(MaxExperience)
	assert.True(t, IsValid(in))

	in.Name = ptr("")
	assert.True(t, IsValid(in), "empty names pass the length rule")
}

func TestNameLengthCountsCharacters(t *testing.T) {
	assert.NoError(t, CheckName("Ёжиквтумане"))
	assert.Error(t, CheckName("ЁжикВТуманеЁж"))
}

func TestCheckUpdateExperience(t *testing.T) {
	assert.Error(t, CheckUpdateExperience(0))
	assert.NoError(t, CheckUpdateExperience(1))
	assert.NoError(t, CheckUpdateExperience(MaxExperience))
	assert.Error(t, CheckUpdateExperience(MaxExperience+1))
}

func TestCheckBirthdayBoundsAreExclusive(t *testing.T) {
	assert.Error(t, CheckBirthday(BirthdayAfter))
	assert.Error(t, CheckBirthday(BirthdayBefore))
	assert.NoError(t, CheckBirthday(BirthdayAfter.Add(time.Millisecond)))
	assert.NoError(t, CheckBirthday(BirthdayBefore.Add(-time.Millisecond)))
	assert.NoError(t, CheckBirthday(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}
