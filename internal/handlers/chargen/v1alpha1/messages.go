package v1alpha1

import (
	"time"
)

// Race is a playable race
type Race struct {
	Name      string `json:"name"`
	Size      string `json:"size"`
	Speed     int    `json:"speed"`
	BonusKind string `json:"bonusKind"`
}

// Occupation is a class with its hit points per level
type Occupation struct {
	Name       string `json:"name"`
	HPPerLevel int    `json:"hpPerLevel"`
}

// AbilityRoll is one 4d6-drop-lowest roll
type AbilityRoll struct {
	Dice         []int `json:"dice"`
	DroppedIndex int   `json:"droppedIndex"`
	Total        int   `json:"total"`
}

// AbilitySlot is one ability and its assigned score, zero when empty
type AbilitySlot struct {
	Ability string `json:"ability"`
	Label   string `json:"label"`
	Score   int    `json:"score"`
}

// Session is a creation session in progress
type Session struct {
	ID           string        `json:"id"`
	PlayerID     string        `json:"playerId,omitempty"`
	Rolls        []AbilityRoll `json:"rolls"`
	Pool         []int         `json:"pool"`
	Remaining    []int         `json:"remaining"`
	Slots        []AbilitySlot `json:"slots"`
	Complete     bool          `json:"complete"`
	BonusApplied bool          `json:"bonusApplied"`
	BonusRace    string        `json:"bonusRace,omitempty"`
	ExpiresAt    time.Time     `json:"expiresAt"`
}

// AbilityValue is a score or modifier for one ability
type AbilityValue struct {
	Ability  string `json:"ability"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	Modifier int    `json:"modifier"`
}

// Character is a finalized character
type Character struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"sessionId"`
	PlayerID   string         `json:"playerId,omitempty"`
	Name       string         `json:"name"`
	PlayerName string         `json:"playerName"`
	Race       string         `json:"race"`
	Occupation string         `json:"occupation"`
	Level      int            `json:"level"`
	Abilities  []AbilityValue `json:"abilities"`
	Size       string         `json:"size"`
	Speed      int            `json:"speed"`
	MaxHP      int            `json:"maxHp"`
	CurrentHP  int            `json:"currentHp"`
	TempHP     int            `json:"tempHp"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListRacesRequest lists the race table
type ListRacesRequest struct{}

// ListRacesResponse contains races in load order
type ListRacesResponse struct {
	Races []Race `json:"races"`
}

// ListOccupationsRequest lists the occupation table
type ListOccupationsRequest struct{}

// ListOccupationsResponse contains occupations in load order
type ListOccupationsResponse struct {
	Occupations []Occupation `json:"occupations"`
}

// CreateSessionRequest starts a creation session
type CreateSessionRequest struct {
	PlayerID string `json:"playerId,omitempty"`
}

// SessionRequest identifies a session
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

// SessionResponse carries a session
type SessionResponse struct {
	Session *Session `json:"session"`
}

// AssignAbilityScoreRequest places a pool value in a slot. Ability accepts
// a full name, an abbreviation, a sheet label or a slot index.
type AssignAbilityScoreRequest struct {
	SessionID string `json:"sessionId"`
	Ability   string `json:"ability"`
	Value     int    `json:"value"`
}

// UnassignAbilityScoreRequest empties a slot
type UnassignAbilityScoreRequest struct {
	SessionID string `json:"sessionId"`
	Ability   string `json:"ability"`
}

// ApplyRacialBonusRequest applies a race's bonus. Plus2 and Plus1 name the
// choice slots by ability name or index 0-5. Leave both empty for flat races;
// a partial or unknown selection is rejected whatever the race.
type ApplyRacialBonusRequest struct {
	SessionID string `json:"sessionId"`
	Race      string `json:"race"`
	Plus2     string `json:"plus2,omitempty"`
	Plus1     string `json:"plus1,omitempty"`
}

// FinalizeCharacterRequest derives and stores a character
type FinalizeCharacterRequest struct {
	SessionID  string `json:"sessionId"`
	Name       string `json:"name"`
	PlayerName string `json:"playerName"`
	Race       string `json:"race"`
	Occupation string `json:"occupation"`
	Level      int    `json:"level"`
}

// FinalizeCharacterResponse carries the stored character
type FinalizeCharacterResponse struct {
	Character      *Character `json:"character"`
	SessionDeleted bool       `json:"sessionDeleted"`
}

// CharacterRequest identifies a character
type CharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// CharacterResponse carries a character
type CharacterResponse struct {
	Character *Character `json:"character"`
}

// ListCharactersRequest selects a player's characters
type ListCharactersRequest struct {
	PlayerID string `json:"playerId"`
}

// ListCharactersResponse contains the characters
type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
}

// DeleteCharacterResponse is empty
type DeleteCharacterResponse struct{}

// ExportCharacterRequest renders a character sheet
type ExportCharacterRequest struct {
	CharacterID string `json:"characterId"`
	Format      string `json:"format,omitempty"`
}

// ExportCharacterResponse carries the rendered document
type ExportCharacterResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}
