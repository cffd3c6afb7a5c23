package creation_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-chargen/internal/engine/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-chargen/internal/repositories/character/mock"
	sessionrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session"
	sessionmock "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	engine        *enginemock.MockEngine
	sessionRepo   *sessionmock.MockRepository
	characterRepo *charactermock.MockRepository
	store         reference.Store
	bus           events.EventBus
	clock         *clock.Fixed
	orchestrator  *creation.Orchestrator
	ctx           context.Context
	published     []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.engine = enginemock.NewMockEngine(s.ctrl)
	s.sessionRepo = sessionmock.NewMockRepository(s.ctrl)
	s.characterRepo = charactermock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	tables, err := reference.NewTables("test",
		[]chargen.Race{*testutils.TestHuman(), *testutils.TestHalfling()},
		[]chargen.Occupation{*testutils.TestFighter(), *testutils.TestWizard()},
	)
	s.Require().NoError(err)
	s.store = reference.NewLoadedStore(tables)

	s.published = nil
	s.bus = events.NewBus()
	for _, eventType := range creation.EventTypes {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e.Type())
			return nil
		})
	}

	s.orchestrator = s.newOrchestrator(s.store)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(store reference.Store) *creation.Orchestrator {
	o, err := creation.New(&creation.Config{
		Engine:         s.engine,
		SessionRepo:    s.sessionRepo,
		CharacterRepo:  s.characterRepo,
		Reference:      store,
		SessionIDGen:   idgen.NewSequential("sess"),
		CharacterIDGen: idgen.NewSequential("char"),
		Clock:          s.clock,
		EventBus:       s.bus,
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := creation.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = creation.New(&creation.Config{})
	s.Require().Error(err)
	fields := errors.FieldErrors(err)
	for _, f := range []string{"Engine", "SessionRepo", "CharacterRepo", "Reference", "SessionIDGen", "CharacterIDGen"} {
		s.Contains(fields, f)
	}
}

func (s *OrchestratorTestSuite) TestReferenceDataNotLoaded() {
	o := s.newOrchestrator(reference.NewStore(nil))

	_, err := o.ListRaces(s.ctx, &creation.ListRacesInput{})
	s.True(errors.Is(err, chargen.ErrReferenceDataNotLoaded))

	_, err = o.CreateSession(s.ctx, &creation.CreateSessionInput{PlayerID: "p"})
	s.True(errors.Is(err, chargen.ErrReferenceDataNotLoaded))

	_, err = o.AssignAbilityScore(s.ctx, &creation.AssignAbilityScoreInput{SessionID: "sess_1", Value: 15})
	s.True(errors.Is(err, chargen.ErrReferenceDataNotLoaded))

	_, err = o.FinalizeCharacter(s.ctx, &creation.FinalizeCharacterInput{SessionID: "sess_1"})
	s.True(errors.Is(err, chargen.ErrReferenceDataNotLoaded))
}

func (s *OrchestratorTestSuite) TestListReferenceData() {
	races, err := s.orchestrator.ListRaces(s.ctx, &creation.ListRacesInput{})
	s.Require().NoError(err)
	s.Require().Len(races.Races, 2)
	s.Equal("Human", races.Races[0].Name)

	occs, err := s.orchestrator.ListOccupations(s.ctx, &creation.ListOccupationsInput{})
	s.Require().NoError(err)
	s.Len(occs.Occupations, 2)

	_, err = s.orchestrator.ListRaces(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateSession() {
	s.engine.EXPECT().RollAbilityScores(s.ctx).
		Return(&engine.RollAbilityScoresOutput{Rolls: testutils.TestRolls()}, nil)
	mocks.ExpectSessionCreate(s.ctx, s.sessionRepo).
		Do(func(_ context.Context, input sessionrepo.CreateInput) {
			s.Equal(creation.DefaultSessionTTL, input.TTL)
		})

	out, err := s.orchestrator.CreateSession(s.ctx, &creation.CreateSessionInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	session := out.Session
	s.Equal("sess_1", session.ID)
	s.Equal(testutils.TestPlayerID, session.PlayerID)
	s.Equal(testutils.TestPool, session.Pool)
	s.Len(session.Rolls, chargen.ScoreCount)
	s.False(session.BonusIsApplied())
	s.Equal([]int(testutils.TestPool), session.Remaining())
	s.Equal([]string{creation.EventSessionCreated}, s.published)
}

func (s *OrchestratorTestSuite) TestCreateSessionRollFailure() {
	s.engine.EXPECT().RollAbilityScores(s.ctx).Return(nil, errors.Internal("entropy exhausted"))

	_, err := s.orchestrator.CreateSession(s.ctx, &creation.CreateSessionInput{})
	s.True(errors.IsInternal(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestGetSession() {
	session := testutils.CreateTestSession("sess_9")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_9", session, nil)

	out, err := s.orchestrator.GetSession(s.ctx, &creation.GetSessionInput{SessionID: "sess_9"})
	s.Require().NoError(err)
	s.Equal(session.Pool, out.Session.Pool)

	_, err = s.orchestrator.GetSession(s.ctx, &creation.GetSessionInput{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(errors.FieldErrors(err), "session_id")
}

func (s *OrchestratorTestSuite) TestGetSessionNotFound() {
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "missing", nil, errors.NotFound("session not found"))

	_, err := s.orchestrator.GetSession(s.ctx, &creation.GetSessionInput{SessionID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["session_id"])
}

func (s *OrchestratorTestSuite) TestRollAbilityScoresResetsSession() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	newRolls := testutils.RollsFor(18, 17, 9, 9, 6, 3)

	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	s.engine.EXPECT().RollAbilityScores(s.ctx).Return(&engine.RollAbilityScoresOutput{Rolls: newRolls}, nil)
	mocks.ExpectSessionUpdate(s.ctx, s.sessionRepo)

	out, err := s.orchestrator.RollAbilityScores(s.ctx, &creation.RollAbilityScoresInput{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(chargen.ScorePool{18, 17, 9, 9, 6, 3}, out.Session.Pool)
	s.Equal(chargen.Assignment{}, out.Session.Assignment)
	s.False(out.Session.BonusIsApplied())
	s.Empty(out.Session.BonusRace)
	s.Equal([]string{creation.EventAbilityScoresRolled}, s.published)
}

func (s *OrchestratorTestSuite) TestRollAbilityScoresFailureLeavesSessionUntouched() {
	session := testutils.CreateTestSession("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	s.engine.EXPECT().RollAbilityScores(s.ctx).Return(nil, errors.Internal("roller failed"))

	_, err := s.orchestrator.RollAbilityScores(s.ctx, &creation.RollAbilityScoresInput{SessionID: "sess_1"})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestAssignAbilityScore() {
	session := testutils.CreateTestSession("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectSessionUpdate(s.ctx, s.sessionRepo)

	out, err := s.orchestrator.AssignAbilityScore(s.ctx, &creation.AssignAbilityScoreInput{
		SessionID: "sess_1",
		Ability:   chargen.AbilityDexterity,
		Value:     15,
	})
	s.Require().NoError(err)
	s.Equal(15, out.Session.Assignment.Get(chargen.AbilityDexterity))
	s.Equal([]int{14, 13, 12, 10, 8}, out.Session.Remaining())
	s.Equal([]string{creation.EventAbilityScoreAssigned}, s.published)
}

func (s *OrchestratorTestSuite) TestAssignUnavailableValueDoesNotPersist() {
	session := testutils.CreateTestSession("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	_, err := s.orchestrator.AssignAbilityScore(s.ctx, &creation.AssignAbilityScoreInput{
		SessionID: "sess_1",
		Ability:   chargen.AbilityStrength,
		Value:     17,
	})
	s.True(errors.Is(err, chargen.ErrValueUnavailable))
	s.Equal("sess_1", errors.GetMeta(err)["session_id"])
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestAssignAfterBonus() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	_, err := s.orchestrator.AssignAbilityScore(s.ctx, &creation.AssignAbilityScoreInput{
		SessionID: "sess_1",
		Ability:   chargen.AbilityStrength,
		Value:     8,
	})
	s.True(errors.Is(err, chargen.ErrBonusAlreadyApplied))
}

func (s *OrchestratorTestSuite) TestUnassignAbilityScore() {
	session := testutils.CreateTestSession("sess_1")
	s.Require().NoError(session.Assign(chargen.AbilityWisdom, 12))
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectSessionUpdate(s.ctx, s.sessionRepo)

	out, err := s.orchestrator.UnassignAbilityScore(s.ctx, &creation.UnassignAbilityScoreInput{
		SessionID: "sess_1",
		Ability:   chargen.AbilityWisdom,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Session.Assignment.Get(chargen.AbilityWisdom))
}

func (s *OrchestratorTestSuite) assignAll(session *chargen.Session) {
	for i, v := range session.Pool {
		s.Require().NoError(session.Assign(chargen.Ability(i), v))
	}
}

func (s *OrchestratorTestSuite) TestApplyFlatBonus() {
	session := testutils.CreateTestSession("sess_1")
	s.assignAll(session)
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectSessionUpdate(s.ctx, s.sessionRepo)

	out, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "human",
	})
	s.Require().NoError(err)
	s.Equal(chargen.Assignment{16, 15, 14, 13, 11, 9}, out.Session.Assignment)
	s.True(out.Session.BonusIsApplied())
	s.Equal("Human", out.Session.BonusRace)
	s.Equal([]string{creation.EventRacialBonusApplied}, s.published)
}

func (s *OrchestratorTestSuite) TestApplyChoiceBonus() {
	session := testutils.CreateTestSession("sess_1")
	s.assignAll(session)
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectSessionUpdate(s.ctx, s.sessionRepo)

	out, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "Halfling",
		Selection: &chargen.BonusSelection{Plus2: 1, Plus1: 5},
	})
	s.Require().NoError(err)
	s.Equal(chargen.Assignment{15, 16, 13, 12, 10, 9}, out.Session.Assignment)
}

func (s *OrchestratorTestSuite) TestApplyChoiceBonusWithoutSelection() {
	session := testutils.CreateTestSession("sess_1")
	s.assignAll(session)
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	_, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "Halfling",
	})
	s.True(errors.Is(err, chargen.ErrInvalidBonusSelection))
}

func (s *OrchestratorTestSuite) TestApplyBonusIncomplete() {
	session := testutils.CreateTestSession("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	_, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "Human",
	})
	s.True(errors.Is(err, chargen.ErrIncompleteAssignment))
}

func (s *OrchestratorTestSuite) TestApplyBonusTwice() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	_, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "Human",
	})
	s.True(errors.Is(err, chargen.ErrBonusAlreadyApplied))
}

func (s *OrchestratorTestSuite) TestApplyBonusUnknownRace() {
	_, err := s.orchestrator.ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
		SessionID: "sess_1",
		RaceName:  "Orc",
	})
	s.True(errors.Is(err, chargen.ErrValidationFailed))
	s.Contains(errors.FieldErrors(err), "race")
}

func (s *OrchestratorTestSuite) finalizeInput() *creation.FinalizeCharacterInput {
	return &creation.FinalizeCharacterInput{
		SessionID:      "sess_1",
		Name:           testutils.TestCharacterName,
		PlayerName:     testutils.TestPlayerName,
		RaceName:       "Human",
		OccupationName: "Fighter",
		Level:          3,
	}
}

func (s *OrchestratorTestSuite) TestFinalizeCharacter() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectCharacterCreate(s.ctx, s.characterRepo)
	mocks.ExpectSessionDelete(s.ctx, s.sessionRepo, "sess_1", nil)

	out, err := s.orchestrator.FinalizeCharacter(s.ctx, s.finalizeInput())
	s.Require().NoError(err)
	s.True(out.SessionDeleted)

	c := out.Character
	s.Equal("char_1", c.ID)
	s.Equal("sess_1", c.SessionID)
	s.Equal(testutils.TestPlayerID, c.PlayerID)
	s.Equal(s.clock.Now(), c.CreatedAt)
	s.Equal([chargen.AbilityCount]int{16, 15, 14, 13, 11, 9}, c.Scores)
	s.Equal([chargen.AbilityCount]int{3, 2, 2, 1, 0, -1}, c.Modifiers)
	s.Equal(30, c.MaxHP)
	s.Equal(30, c.CurrentHP)
	s.Equal(0, c.TempHP)
	s.Equal("Medium", c.Size)
	s.Equal(30, c.Speed)
	s.Equal([]string{creation.EventCharacterCreated}, s.published)
}

func (s *OrchestratorTestSuite) TestFinalizeChoiceBonusCharacter() {
	session := builders.NewSessionBuilder().
		WithID("sess_1").
		WithPoolAssignedInOrder().
		WithRacialBonus(testutils.TestHalfling(), &chargen.BonusSelection{
			Plus2: int(chargen.AbilityDexterity),
			Plus1: int(chargen.AbilityIntelligence),
		}).
		Build()
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectCharacterCreate(s.ctx, s.characterRepo)
	mocks.ExpectSessionDelete(s.ctx, s.sessionRepo, "sess_1", nil)

	input := s.finalizeInput()
	input.RaceName = "Halfling"
	input.OccupationName = "Wizard"
	input.Level = 2

	out, err := s.orchestrator.FinalizeCharacter(s.ctx, input)
	s.Require().NoError(err)

	c := out.Character
	s.Equal([chargen.AbilityCount]int{15, 16, 13, 13, 10, 8}, c.Scores)
	s.Equal([chargen.AbilityCount]int{2, 3, 1, 1, 0, -1}, c.Modifiers)
	s.Equal(12, c.MaxHP)
	s.Equal("Small", c.Size)
	s.Equal(25, c.Speed)
	s.NoError(c.Check())
}

func (s *OrchestratorTestSuite) TestFinalizeKeepsCharacterWhenSessionDeleteFails() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	mocks.ExpectCharacterCreate(s.ctx, s.characterRepo)
	mocks.ExpectSessionDelete(s.ctx, s.sessionRepo, "sess_1", errors.Internal("redis down"))

	out, err := s.orchestrator.FinalizeCharacter(s.ctx, s.finalizeInput())
	s.Require().NoError(err)
	s.False(out.SessionDeleted)
	s.NotNil(out.Character)
}

func (s *OrchestratorTestSuite) TestFinalizeNotReady() {
	testCases := []struct {
		name    string
		session func() *chargen.Session
		extra   error
	}{
		{
			name:    "incomplete assignment",
			session: func() *chargen.Session { return testutils.CreateTestSession("sess_1") },
			extra:   chargen.ErrIncompleteAssignment,
		},
		{
			name: "bonus not applied",
			session: func() *chargen.Session {
				session := testutils.CreateTestSession("sess_1")
				s.assignAll(session)
				return session
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", tc.session(), nil)

			_, err := s.orchestrator.FinalizeCharacter(s.ctx, s.finalizeInput())
			s.True(errors.Is(err, chargen.ErrCharacterNotReady))
			if tc.extra != nil {
				s.True(errors.Is(err, tc.extra))
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestFinalizeValidation() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)

	input := s.finalizeInput()
	input.Name = "  "
	input.OccupationName = "Bard"
	input.Level = 21

	_, err := s.orchestrator.FinalizeCharacter(s.ctx, input)
	s.True(errors.Is(err, chargen.ErrValidationFailed))
	fields := errors.FieldErrors(err)
	s.Contains(fields, "name")
	s.Contains(fields, "occupation")
	s.Contains(fields, "level")
}

func (s *OrchestratorTestSuite) TestFinalizeCharacterAlreadyExists() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	mocks.ExpectSessionGet(s.ctx, s.sessionRepo, "sess_1", session, nil)
	s.characterRepo.EXPECT().Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("session already finalized"))

	_, err := s.orchestrator.FinalizeCharacter(s.ctx, s.finalizeInput())
	s.True(errors.IsAlreadyExists(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestGetAndListCharacters() {
	character := testutils.CreateTestCharacter("sess_1")
	mocks.ExpectCharacterGet(s.ctx, s.characterRepo, character.ID, character, nil)

	got, err := s.orchestrator.GetCharacter(s.ctx, &creation.GetCharacterInput{CharacterID: character.ID})
	s.Require().NoError(err)
	s.Equal(character, got.Character)

	s.characterRepo.EXPECT().
		ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID}).
		Return(&characterrepo.ListByPlayerIDOutput{Characters: []*chargen.Character{character}}, nil)

	list, err := s.orchestrator.ListCharacters(s.ctx, &creation.ListCharactersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(list.Characters, 1)

	_, err = s.orchestrator.GetCharacter(s.ctx, &creation.GetCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.characterRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &creation.DeleteCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]string{creation.EventCharacterDeleted}, s.published)
}

func (s *OrchestratorTestSuite) TestExportCharacter() {
	character := testutils.CreateTestCharacter("sess_1")
	mocks.ExpectCharacterGet(s.ctx, s.characterRepo, character.ID, character, nil).Times(2)

	out, err := s.orchestrator.ExportCharacter(s.ctx, &creation.ExportCharacterInput{CharacterID: character.ID})
	s.Require().NoError(err)
	s.Equal("Thorin Oakenshield.json", out.Document.FileName)
	s.Contains(string(out.Document.Data), `"力量": 16`)

	out, err = s.orchestrator.ExportCharacter(s.ctx, &creation.ExportCharacterInput{
		CharacterID: character.ID,
		Format:      export.FormatPDF,
	})
	s.Require().NoError(err)
	s.Equal("Thorin Oakenshield.pdf", out.Document.FileName)

	_, err = s.orchestrator.ExportCharacter(s.ctx, &creation.ExportCharacterInput{
		CharacterID: character.ID,
		Format:      "docx",
	})
	s.True(errors.IsInvalidArgument(err))
}
