package chargen

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Ability identifies one of the six ability slots. The numeric value is the
// slot index used by the racial bonus selection.
type Ability int

// Ability slots in sheet order
const (
	AbilityStrength Ability = iota
	AbilityDexterity
	AbilityConstitution
	AbilityIntelligence
	AbilityWisdom
	AbilityCharisma
)

// AbilityCount is the number of ability slots
const AbilityCount = 6

// Abilities lists every slot in sheet order
var Abilities = [AbilityCount]Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = [AbilityCount]string{
	"strength",
	"dexterity",
	"constitution",
	"intelligence",
	"wisdom",
	"charisma",
}

var abilityShortNames = [AbilityCount]string{"str", "dex", "con", "int", "wis", "cha"}

// abilityLabels are the keys used on exported sheets
var abilityLabels = [AbilityCount]string{"力量", "敏捷", "体质", "智力", "感知", "魅力"}

// Valid reports whether a names one of the six slots
func (a Ability) Valid() bool {
	return a >= AbilityStrength && a <= AbilityCharisma
}

// String returns the lower-case English name
func (a Ability) String() string {
	if !a.Valid() {
		return "ability(" + strconv.Itoa(int(a)) + ")"
	}
	return abilityNames[a]
}

// Label returns the sheet label for the slot
func (a Ability) Label() string {
	if !a.Valid() {
		return a.String()
	}
	return abilityLabels[a]
}

// Title returns the capitalised English name
func (a Ability) Title() string {
	name := a.String()
	if !a.Valid() {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ShortName returns the three letter abbreviation
func (a Ability) ShortName() string {
	if !a.Valid() {
		return a.String()
	}
	return abilityShortNames[a]
}

// ParseAbility accepts a full name, a three letter abbreviation, a sheet label
// or a slot index.
func ParseAbility(s string) (Ability, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < AbilityCount; i++ {
		if key == abilityNames[i] || key == abilityShortNames[i] || key == abilityLabels[i] {
			return Ability(i), nil
		}
	}
	if idx, err := strconv.Atoi(key); err == nil && Ability(idx).Valid() {
		return Ability(idx), nil
	}
	return 0, errors.InvalidArgumentf("unknown ability %q", s)
}
