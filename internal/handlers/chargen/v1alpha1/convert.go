package v1alpha1

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

func convertRaces(races []chargen.Race) []Race {
	out := make([]Race, 0, len(races))
	for _, r := range races {
		out = append(out, Race{
			Name:      r.Name,
			Size:      r.Size,
			Speed:     r.Speed,
			BonusKind: string(r.BonusKind),
		})
	}
	return out
}

func convertOccupations(occupations []chargen.Occupation) []Occupation {
	out := make([]Occupation, 0, len(occupations))
	for _, o := range occupations {
		out = append(out, Occupation{Name: o.Name, HPPerLevel: o.HPPerLevel})
	}
	return out
}

func convertSession(s *chargen.Session) *Session {
	if s == nil {
		return nil
	}

	rolls := make([]AbilityRoll, 0, len(s.Rolls))
	for _, r := range s.Rolls {
		rolls = append(rolls, AbilityRoll{
			Dice:         append([]int(nil), r.Dice...),
			DroppedIndex: r.DroppedIndex,
			Total:        r.Total,
		})
	}

	slots := make([]AbilitySlot, 0, chargen.AbilityCount)
	for _, a := range chargen.Abilities {
		slots = append(slots, AbilitySlot{
			Ability: a.String(),
			Label:   a.Label(),
			Score:   s.Assignment.Get(a),
		})
	}

	return &Session{
		ID:           s.ID,
		PlayerID:     s.PlayerID,
		Rolls:        rolls,
		Pool:         append([]int(nil), s.Pool...),
		Remaining:    s.Remaining(),
		Slots:        slots,
		Complete:     s.IsComplete(),
		BonusApplied: s.BonusIsApplied(),
		BonusRace:    s.BonusRace,
		ExpiresAt:    s.ExpiresAt,
	}
}

func convertCharacter(c *chargen.Character) *Character {
	if c == nil {
		return nil
	}

	abilities := make([]AbilityValue, 0, chargen.AbilityCount)
	for _, a := range chargen.Abilities {
		abilities = append(abilities, AbilityValue{
			Ability:  a.String(),
			Label:    a.Label(),
			Score:    c.Score(a),
			Modifier: c.Modifier(a),
		})
	}

	return &Character{
		ID:         c.ID,
		SessionID:  c.SessionID,
		PlayerID:   c.PlayerID,
		Name:       c.Name,
		PlayerName: c.PlayerName,
		Race:       c.Race,
		Occupation: c.Occupation,
		Level:      c.Level,
		Abilities:  abilities,
		Size:       c.Size,
		Speed:      c.Speed,
		MaxHP:      c.MaxHP,
		CurrentHP:  c.CurrentHP,
		TempHP:     c.TempHP,
		CreatedAt:  c.CreatedAt,
	}
}

func convertCharacters(characters []*chargen.Character) []*Character {
	out := make([]*Character, 0, len(characters))
	for _, c := range characters {
		out = append(out, convertCharacter(c))
	}
	return out
}
