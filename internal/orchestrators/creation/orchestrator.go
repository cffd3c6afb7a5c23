// Package creation implements the character creation orchestrator: it rolls
// score pools, records assignments and the racial bonus on a stored session,
// and finalizes sessions into characters.
package creation

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	"github.com/KirkDiggler/rpg-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	sessionrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

// DefaultSessionTTL is how long an untouched session lives
const DefaultSessionTTL = 24 * time.Hour

// Config holds the dependencies for the creation orchestrator
type Config struct {
	Engine         engine.Engine
	SessionRepo    sessionrepo.Repository
	CharacterRepo  characterrepo.Repository
	Reference      reference.Store
	SessionIDGen   idgen.Generator
	CharacterIDGen idgen.Generator
	Clock          clock.Clock
	EventBus       events.EventBus
	Logger         *zap.Logger

	SessionTTL time.Duration
	MaxLevel   int
	// ExportOptions are passed to every export
	ExportOptions export.Options
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Reference == nil {
		vb.RequiredField("Reference")
	}
	if c.SessionIDGen == nil {
		vb.RequiredField("SessionIDGen")
	}
	if c.CharacterIDGen == nil {
		vb.RequiredField("CharacterIDGen")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}
	if c.MaxLevel < 0 {
		vb.Field("MaxLevel", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine         engine.Engine
	sessionRepo    sessionrepo.Repository
	characterRepo  characterrepo.Repository
	reference      reference.Store
	sessionIDGen   idgen.Generator
	characterIDGen idgen.Generator
	clock          clock.Clock
	eventBus       events.EventBus
	logger         *zap.Logger
	sessionTTL     time.Duration
	maxLevel       int
	exportOptions  export.Options
}

var _ Service = (*Orchestrator)(nil)

// New creates a new creation orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		engine:         cfg.Engine,
		sessionRepo:    cfg.SessionRepo,
		characterRepo:  cfg.CharacterRepo,
		reference:      cfg.Reference,
		sessionIDGen:   cfg.SessionIDGen,
		characterIDGen: cfg.CharacterIDGen,
		clock:          cfg.Clock,
		eventBus:       cfg.EventBus,
		logger:         cfg.Logger,
		sessionTTL:     cfg.SessionTTL,
		maxLevel:       cfg.MaxLevel,
		exportOptions:  cfg.ExportOptions,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.eventBus == nil {
		o.eventBus = events.NewBus()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.logger = o.logger.Named("creation")
	if o.sessionTTL == 0 {
		o.sessionTTL = DefaultSessionTTL
	}
	if o.maxLevel == 0 {
		o.maxLevel = chargen.DefaultMaxLevel
	}
	return o, nil
}

// Reference data

// ListRaces returns the loaded race table
func (o *Orchestrator) ListRaces(_ context.Context, input *ListRacesInput) (*ListRacesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tables, err := o.reference.Tables()
	if err != nil {
		return nil, err
	}

	return &ListRacesOutput{Races: tables.Races()}, nil
}

// ListOccupations returns the loaded occupation table
func (o *Orchestrator) ListOccupations(_ context.Context, input *ListOccupationsInput) (*ListOccupationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tables, err := o.reference.Tables()
	if err != nil {
		return nil, err
	}

	return &ListOccupationsOutput{Occupations: tables.Occupations()}, nil
}

// Session lifecycle

// CreateSession starts a session and rolls its first pool
func (o *Orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.reference.Tables(); err != nil {
		return nil, err
	}

	rolled, err := o.engine.RollAbilityScores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	session := chargen.NewSession(o.sessionIDGen.Generate(), rolled.Rolls)
	session.PlayerID = input.PlayerID

	created, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	o.logger.Info("creation session started",
		zap.String("session_id", created.Session.ID),
		zap.String("player_id", input.PlayerID),
		zap.Ints("pool", created.Session.Pool),
	)
	o.publish(ctx, EventSessionCreated, rpgtoolkit.WrapSession(created.Session), map[string]interface{}{
		"pool": []int(created.Session.Pool),
	})

	return &CreateSessionOutput{Session: created.Session}, nil
}

// GetSession loads a session
func (o *Orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	session, err := o.loadSession(ctx, input)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}

// RollAbilityScores replaces the pool. The assignment and bonus are cleared.
func (o *Orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	rolled, err := o.engine.RollAbilityScores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores").
			WithMeta("session_id", input.SessionID)
	}

	session.Reroll(rolled.Rolls)

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("ability scores rerolled",
		zap.String("session_id", saved.ID),
		zap.Ints("pool", saved.Pool),
	)
	o.publish(ctx, EventAbilityScoresRolled, rpgtoolkit.WrapSession(saved), map[string]interface{}{
		"pool": []int(saved.Pool),
	})

	return &RollAbilityScoresOutput{Session: saved}, nil
}

// AssignAbilityScore places a pool value in a slot
func (o *Orchestrator) AssignAbilityScore(ctx context.Context, input *AssignAbilityScoreInput) (*AssignAbilityScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if err := session.Assign(input.Ability, input.Value); err != nil {
		return nil, errors.Wrapf(err, "failed to assign %d to %s", input.Value, input.Ability).
			WithMeta("session_id", input.SessionID)
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventAbilityScoreAssigned, rpgtoolkit.WrapSession(saved), map[string]interface{}{
		"ability": input.Ability.String(),
		"value":   input.Value,
	})

	return &AssignAbilityScoreOutput{Session: saved}, nil
}

// UnassignAbilityScore empties a slot
func (o *Orchestrator) UnassignAbilityScore(ctx context.Context, input *UnassignAbilityScoreInput) (*UnassignAbilityScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if err := session.Unassign(input.Ability); err != nil {
		return nil, errors.Wrapf(err, "failed to clear %s", input.Ability).
			WithMeta("session_id", input.SessionID)
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &UnassignAbilityScoreOutput{Session: saved}, nil
}

// ApplyRacialBonus applies the bonus of the named race once
func (o *Orchestrator) ApplyRacialBonus(ctx context.Context, input *ApplyRacialBonusInput) (*ApplyRacialBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tables, err := o.reference.Tables()
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("race", input.RaceName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, ok := tables.LookupRace(input.RaceName)
	if !ok {
		return nil, errors.NewValidationBuilder().
			Fieldf("race", "unknown race %q", input.RaceName).
			Build()
	}

	session, err := o.loadSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	if err := session.ApplyRacialBonus(race, input.Selection); err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s bonus", race.Name).
			WithMeta("session_id", input.SessionID)
	}

	saved, err := o.saveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	o.logger.Info("racial bonus applied",
		zap.String("session_id", saved.ID),
		zap.String("race", race.Name),
		zap.String("kind", string(race.BonusKind)),
	)
	o.publish(ctx, EventRacialBonusApplied, rpgtoolkit.WrapSession(saved), map[string]interface{}{
		"race": race.Name,
		"kind": string(race.BonusKind),
	})

	return &ApplyRacialBonusOutput{Session: saved}, nil
}

// Characters

// FinalizeCharacter derives a character from a ready session, stores it and
// removes the session
func (o *Orchestrator) FinalizeCharacter(ctx context.Context, input *FinalizeCharacterInput) (*FinalizeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tables, err := o.reference.Tables()
	if err != nil {
		return nil, err
	}

	session, err := o.loadSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	character, err := chargen.Derive(session, tables, chargen.DeriveInput{
		Name:           input.Name,
		PlayerName:     input.PlayerName,
		RaceName:       input.RaceName,
		OccupationName: input.OccupationName,
		Level:          input.Level,
		MaxLevel:       o.maxLevel,
	})
	if err != nil {
		return nil, err
	}

	character.ID = o.characterIDGen.Generate()
	character.SessionID = session.ID
	character.PlayerID = session.PlayerID
	character.CreatedAt = o.clock.Now()

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character").
			WithMeta("session_id", session.ID)
	}

	_, err = o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: session.ID})
	if err != nil {
		o.logger.Error("failed to delete finalized session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	o.logger.Info("character created",
		zap.String("character_id", created.Character.ID),
		zap.String("session_id", session.ID),
		zap.String("race", created.Character.Race),
		zap.String("occupation", created.Character.Occupation),
		zap.Int("level", created.Character.Level),
	)
	o.publish(ctx, EventCharacterCreated, rpgtoolkit.WrapCharacter(created.Character), map[string]interface{}{
		"session_id": session.ID,
	})

	return &FinalizeCharacterOutput{
		Character:      created.Character,
		SessionDeleted: err == nil,
	}, nil
}

// GetCharacter loads a finalized character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters returns every character of a player
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	o.publish(ctx, EventCharacterDeleted, rpgtoolkit.WrapCharacter(&chargen.Character{ID: input.CharacterID}), nil)

	return &DeleteCharacterOutput{}, nil
}

// ExportCharacter renders a character as JSON or PDF
func (o *Orchestrator) ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	format, err := export.ParseFormat(string(input.Format))
	if err != nil {
		return nil, err
	}

	got, err := o.GetCharacter(ctx, &GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	doc, err := export.Render(got.Character.Sheet(), format, o.exportOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export character").
			WithMeta("character_id", input.CharacterID)
	}

	return &ExportCharacterOutput{Document: doc}, nil
}

// loadSession checks reference readiness and fetches a session
func (o *Orchestrator) loadSession(ctx context.Context, input *GetSessionInput) (*chargen.Session, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.reference.Tables(); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session").
			WithMeta("session_id", input.SessionID)
	}
	return out.Session, nil
}

func (o *Orchestrator) saveSession(ctx context.Context, session *chargen.Session) (*chargen.Session, error) {
	out, err := o.sessionRepo.Update(ctx, sessionrepo.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session").
			WithMeta("session_id", session.ID)
	}
	return out.Session, nil
}
