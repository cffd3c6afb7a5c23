// Package v1alpha1 serves the character creation gRPC API
package v1alpha1

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CreationService creation.Service
	Logger          *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("handler config is required")
	}
	if c.CreationService == nil {
		return errors.InvalidArgument("creation service is required")
	}
	return nil
}

// Handler implements CharacterCreationServiceServer on top of the creation
// orchestrator
type Handler struct {
	UnimplementedCharacterCreationServiceServer
	service creation.Service
	logger  *zap.Logger
}

var _ CharacterCreationServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		service: cfg.CreationService,
		logger:  logger.Named("chargen.v1alpha1"),
	}, nil
}

// toStatus converts an orchestrator error for the wire. Internal failures are
// logged here since the client only sees the status.
func (h *Handler) toStatus(method string, err error) error {
	if errors.IsInternal(err) {
		h.logger.Error("request failed", zap.String("method", method), zap.Error(err))
	}
	return errors.ToGRPCError(err)
}

// ListRaces returns the race table
func (h *Handler) ListRaces(ctx context.Context, _ *ListRacesRequest) (*ListRacesResponse, error) {
	output, err := h.service.ListRaces(ctx, &creation.ListRacesInput{})
	if err != nil {
		return nil, h.toStatus("ListRaces", err)
	}
	return &ListRacesResponse{Races: convertRaces(output.Races)}, nil
}

// ListOccupations returns the occupation table
func (h *Handler) ListOccupations(ctx context.Context, _ *ListOccupationsRequest) (*ListOccupationsResponse, error) {
	output, err := h.service.ListOccupations(ctx, &creation.ListOccupationsInput{})
	if err != nil {
		return nil, h.toStatus("ListOccupations", err)
	}
	return &ListOccupationsResponse{Occupations: convertOccupations(output.Occupations)}, nil
}

// CreateSession starts a session with a freshly rolled pool
func (h *Handler) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionResponse, error) {
	output, err := h.service.CreateSession(ctx, &creation.CreateSessionInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, h.toStatus("CreateSession", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// GetSession returns a session
func (h *Handler) GetSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	output, err := h.service.GetSession(ctx, &creation.GetSessionInput{
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, h.toStatus("GetSession", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// RollAbilityScores replaces the pool of a session
func (h *Handler) RollAbilityScores(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	output, err := h.service.RollAbilityScores(ctx, &creation.RollAbilityScoresInput{
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, h.toStatus("RollAbilityScores", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// AssignAbilityScore places a pool value in a slot
func (h *Handler) AssignAbilityScore(ctx context.Context, req *AssignAbilityScoreRequest) (*SessionResponse, error) {
	ability, err := parseAbilityField("ability", req.Ability)
	if err != nil {
		return nil, h.toStatus("AssignAbilityScore", err)
	}

	output, err := h.service.AssignAbilityScore(ctx, &creation.AssignAbilityScoreInput{
		SessionID: req.SessionID,
		Ability:   ability,
		Value:     req.Value,
	})
	if err != nil {
		return nil, h.toStatus("AssignAbilityScore", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// UnassignAbilityScore empties a slot
func (h *Handler) UnassignAbilityScore(ctx context.Context, req *UnassignAbilityScoreRequest) (*SessionResponse, error) {
	ability, err := parseAbilityField("ability", req.Ability)
	if err != nil {
		return nil, h.toStatus("UnassignAbilityScore", err)
	}

	output, err := h.service.UnassignAbilityScore(ctx, &creation.UnassignAbilityScoreInput{
		SessionID: req.SessionID,
		Ability:   ability,
	})
	if err != nil {
		return nil, h.toStatus("UnassignAbilityScore", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// ApplyRacialBonus applies the bonus of the named race
func (h *Handler) ApplyRacialBonus(ctx context.Context, req *ApplyRacialBonusRequest) (*SessionResponse, error) {
	selection, err := parseSelection(req.Plus2, req.Plus1)
	if err != nil {
		return nil, h.toStatus("ApplyRacialBonus", err)
	}

	output, err := h.service.ApplyRacialBonus(ctx, &creation.ApplyRacialBonusInput{
		SessionID: req.SessionID,
		RaceName:  req.Race,
		Selection: selection,
	})
	if err != nil {
		return nil, h.toStatus("ApplyRacialBonus", err)
	}
	return &SessionResponse{Session: convertSession(output.Session)}, nil
}

// FinalizeCharacter derives and stores a character from a session
func (h *Handler) FinalizeCharacter(ctx context.Context, req *FinalizeCharacterRequest) (*FinalizeCharacterResponse, error) {
	output, err := h.service.FinalizeCharacter(ctx, &creation.FinalizeCharacterInput{
		SessionID:      req.SessionID,
		Name:           req.Name,
		PlayerName:     req.PlayerName,
		RaceName:       req.Race,
		OccupationName: req.Occupation,
		Level:          req.Level,
	})
	if err != nil {
		return nil, h.toStatus("FinalizeCharacter", err)
	}
	return &FinalizeCharacterResponse{
		Character:      convertCharacter(output.Character),
		SessionDeleted: output.SessionDeleted,
	}, nil
}

// GetCharacter returns a stored character
func (h *Handler) GetCharacter(ctx context.Context, req *CharacterRequest) (*CharacterResponse, error) {
	output, err := h.service.GetCharacter(ctx, &creation.GetCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, h.toStatus("GetCharacter", err)
	}
	return &CharacterResponse{Character: convertCharacter(output.Character)}, nil
}

// ListCharacters returns a player's characters
func (h *Handler) ListCharacters(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
	output, err := h.service.ListCharacters(ctx, &creation.ListCharactersInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, h.toStatus("ListCharacters", err)
	}
	return &ListCharactersResponse{Characters: convertCharacters(output.Characters)}, nil
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, req *CharacterRequest) (*DeleteCharacterResponse, error) {
	if _, err := h.service.DeleteCharacter(ctx, &creation.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	}); err != nil {
		return nil, h.toStatus("DeleteCharacter", err)
	}
	return &DeleteCharacterResponse{}, nil
}

// ExportCharacter renders a character sheet
func (h *Handler) ExportCharacter(ctx context.Context, req *ExportCharacterRequest) (*ExportCharacterResponse, error) {
	output, err := h.service.ExportCharacter(ctx, &creation.ExportCharacterInput{
		CharacterID: req.CharacterID,
		Format:      export.Format(req.Format),
	})
	if err != nil {
		return nil, h.toStatus("ExportCharacter", err)
	}
	return &ExportCharacterResponse{
		FileName:    output.Document.FileName,
		ContentType: output.Document.ContentType,
		Data:        output.Document.Data,
	}, nil
}

func parseAbilityField(field, value string) (chargen.Ability, error) {
	vb := errors.NewValidationBuilder()
	if value == "" {
		vb.RequiredField(field)
		return 0, vb.Build()
	}
	ability, err := chargen.ParseAbility(value)
	if err != nil {
		vb.Fieldf(field, "unknown ability %q", value)
		return 0, vb.Build()
	}
	return ability, nil
}

// parseSelection returns nil when neither slot is given so flat races need no
// selection. Every other problem is an invalid bonus selection.
func parseSelection(plus2, plus1 string) (*chargen.BonusSelection, error) {
	if plus2 == "" && plus1 == "" {
		return nil, nil
	}

	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(chargen.ErrInvalidBonusSelection, format, args...).
			WithMeta("plus2", plus2).
			WithMeta("plus1", plus1)
	}

	if plus2 == "" || plus1 == "" {
		return nil, invalid("a choice bonus needs both a +2 and a +1 ability")
	}
	slot2, ok := parseSlot(plus2)
	if !ok {
		return nil, invalid("unknown +2 ability %q", plus2)
	}
	slot1, ok := parseSlot(plus1)
	if !ok {
		return nil, invalid("unknown +1 ability %q", plus1)
	}
	return &chargen.BonusSelection{Plus2: slot2, Plus1: slot1}, nil
}

// parseSlot accepts an ability name or a slot index in 0-5
func parseSlot(value string) (int, bool) {
	if idx, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return idx, chargen.Ability(idx).Valid()
	}
	ability, err := chargen.ParseAbility(value)
	if err != nil {
		return 0, false
	}
	return int(ability), true
}
