package model

import "fmt"

// Race is the closed set of player races
type Race string

const (
	RaceHuman  Race = "HUMAN"
	RaceDwarf  Race = "DWARF"
	RaceElf    Race = "ELF"
	RaceGiant  Race = "GIANT"
	RaceOrc    Race = "ORC"
	RaceTroll  Race = "TROLL"
	RaceHobbit Race = "HOBBIT"
)

// Races lists every race in declaration order
var Races = []Race{RaceHuman, RaceDwarf, RaceElf, RaceGiant, RaceOrc, RaceTroll, RaceHobbit}

// ParseRace converts a wire value into a Race
func ParseRace(s string) (Race, error) {
	for _, r := range Races {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown race %q", ErrInvalidEnum, s)
}

// UnmarshalText rejects values outside the enum
func (r *Race) UnmarshalText(text []byte) error {
	parsed, err := ParseRace(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Profession is the closed set of player professions
type Profession string

const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
)

// Professions lists every profession in declaration order
var Professions = []Profession{
	ProfessionWarrior, ProfessionRogue, ProfessionSorcerer, ProfessionCleric,
	ProfessionPaladin, ProfessionNazgul, ProfessionWarlock, ProfessionDruid,
}

// ParseProfession converts a wire value into a Profession
func ParseProfession(s string) (Profession, error) {
	for _, p := range Professions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown profession %q", ErrInvalidEnum, s)
}

// UnmarshalText rejects values outside the enum
func (p *Profession) UnmarshalText(text []byte) error {
	parsed, err := ParseProfession(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Order selects the field players are sorted by (always ascending)
type Order string

const (
	OrderID         Order = "ID"
	OrderName       Order = "NAME"
	OrderExperience Order = "EXPERIENCE"
	OrderBirthday   Order = "BIRTHDAY"
	OrderLevel      Order = "LEVEL"
)

// Orders lists every sort key
var Orders = []Order{OrderID, OrderName, OrderExperience, OrderBirthday, OrderLevel}

// ParseOrder converts a wire value into an Order
func ParseOrder(s string) (Order, error) {
	for _, o := range Orders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: unknown order %q", ErrInvalidEnum, s)
}
