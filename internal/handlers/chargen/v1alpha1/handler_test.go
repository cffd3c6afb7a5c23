package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	v1alpha1 "github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation"
	creationmock "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation/mock"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *creationmock.MockService
	handler *v1alpha1.Handler
	ctx     context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = creationmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CreationService: s.service})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestListRaces() {
	s.service.EXPECT().
		ListRaces(s.ctx, &creation.ListRacesInput{}).
		Return(&creation.ListRacesOutput{Races: []chargen.Race{*testutils.TestHuman(), *testutils.TestHalfling()}}, nil)

	resp, err := s.handler.ListRaces(s.ctx, &v1alpha1.ListRacesRequest{})
	s.Require().NoError(err)
	s.Equal([]v1alpha1.Race{
		{Name: "Human", Size: "Medium", Speed: 30, BonusKind: "flat"},
		{Name: "Halfling", Size: "Small", Speed: 25, BonusKind: "choice"},
	}, resp.Races)
}

func (s *HandlerTestSuite) TestListOccupationsUnavailable() {
	s.service.EXPECT().
		ListOccupations(s.ctx, gomock.Any()).
		Return(nil, chargen.ErrReferenceDataNotLoaded)

	_, err := s.handler.ListOccupations(s.ctx, &v1alpha1.ListOccupationsRequest{})
	s.Require().Error(err)
	s.Equal(codes.Unavailable, status.Code(err))
	s.Equal(chargen.ReasonReferenceDataNotLoaded, errors.GetReason(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestCreateSession() {
	session := testutils.CreateTestSession("sess_1")
	s.service.EXPECT().
		CreateSession(s.ctx, &creation.CreateSessionInput{PlayerID: testutils.TestPlayerID}).
		Return(&creation.CreateSessionOutput{Session: session}, nil)

	resp, err := s.handler.CreateSession(s.ctx, &v1alpha1.CreateSessionRequest{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	s.Equal("sess_1", resp.Session.ID)
	s.Equal([]int{15, 14, 13, 12, 10, 8}, resp.Session.Pool)
	s.Equal(resp.Session.Pool, resp.Session.Remaining)
	s.Len(resp.Session.Rolls, chargen.AbilityCount)
	s.Len(resp.Session.Slots, chargen.AbilityCount)
	s.Equal("strength", resp.Session.Slots[0].Ability)
	s.Equal("力量", resp.Session.Slots[0].Label)
	s.Zero(resp.Session.Slots[0].Score)
	s.False(resp.Session.Complete)
	s.False(resp.Session.BonusApplied)
}

func (s *HandlerTestSuite) TestAssignAbilityScoreParsesAbility() {
	session := testutils.CreateTestSession("sess_1")
	s.Require().NoError(session.Assign(chargen.AbilityDexterity, 15))

	s.service.EXPECT().
		AssignAbilityScore(s.ctx, &creation.AssignAbilityScoreInput{
			SessionID: "sess_1",
			Ability:   chargen.AbilityDexterity,
			Value:     15,
		}).
		Return(&creation.AssignAbilityScoreOutput{Session: session}, nil)

	resp, err := s.handler.AssignAbilityScore(s.ctx, &v1alpha1.AssignAbilityScoreRequest{
		SessionID: "sess_1",
		Ability:   "dex",
		Value:     15,
	})
	s.Require().NoError(err)
	s.Equal(15, resp.Session.Slots[chargen.AbilityDexterity].Score)
	s.Equal([]int{14, 13, 12, 10, 8}, resp.Session.Remaining)
}

func (s *HandlerTestSuite) TestAssignAbilityScoreUnknownAbility() {
	_, err := s.handler.AssignAbilityScore(s.ctx, &v1alpha1.AssignAbilityScoreRequest{
		SessionID: "sess_1",
		Ability:   "luck",
		Value:     15,
	})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	fields := errors.FieldErrors(errors.FromGRPCError(err))
	s.Contains(fields, "ability")
}

func (s *HandlerTestSuite) TestAssignAbilityScoreValueUnavailable() {
	s.service.EXPECT().
		AssignAbilityScore(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(chargen.ErrValueUnavailable, "assign").WithMeta("value", 18))

	_, err := s.handler.AssignAbilityScore(s.ctx, &v1alpha1.AssignAbilityScoreRequest{
		SessionID: "sess_1",
		Ability:   "strength",
		Value:     18,
	})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.Is(converted, chargen.ErrValueUnavailable))
	s.Equal("18", errors.GetMeta(converted)["value"])
}

func (s *HandlerTestSuite) TestUnassignAbilityScore() {
	session := testutils.CreateTestSession("sess_1")
	s.service.EXPECT().
		UnassignAbilityScore(s.ctx, &creation.UnassignAbilityScoreInput{
			SessionID: "sess_1",
			Ability:   chargen.AbilityCharisma,
		}).
		Return(&creation.UnassignAbilityScoreOutput{Session: session}, nil)

	_, err := s.handler.UnassignAbilityScore(s.ctx, &v1alpha1.UnassignAbilityScoreRequest{
		SessionID: "sess_1",
		Ability:   "魅力",
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestApplyRacialBonusFlatSendsNoSelection() {
	session := testutils.CreateTestSessionReadyToFinalize("sess_1")
	s.service.EXPECT().
		ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
			SessionID: "sess_1",
			RaceName:  "Human",
		}).
		Return(&creation.ApplyRacialBonusOutput{Session: session}, nil)

	resp, err := s.handler.ApplyRacialBonus(s.ctx, &v1alpha1.ApplyRacialBonusRequest{
		SessionID: "sess_1",
		Race:      "Human",
	})
	s.Require().NoError(err)
	s.True(resp.Session.BonusApplied)
	s.Equal("Human", resp.Session.BonusRace)
	s.Empty(resp.Session.Remaining)
}

func (s *HandlerTestSuite) TestApplyRacialBonusChoiceSelection() {
	session := testutils.CreateTestSession("sess_1")
	s.service.EXPECT().
		ApplyRacialBonus(s.ctx, &creation.ApplyRacialBonusInput{
			SessionID: "sess_1",
			RaceName:  "Halfling",
			Selection: &chargen.BonusSelection{Plus2: 1, Plus1: 5},
		}).
		Return(&creation.ApplyRacialBonusOutput{Session: session}, nil)

	_, err := s.handler.ApplyRacialBonus(s.ctx, &v1alpha1.ApplyRacialBonusRequest{
		SessionID: "sess_1",
		Race:      "Halfling",
		Plus2:     "dexterity",
		Plus1:     "5",
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestApplyRacialBonusRejectsBadSelection() {
	testCases := []struct {
		name  string
		plus2 string
		plus1 string
	}{
		{name: "missing plus1", plus2: "dex"},
		{name: "missing plus2", plus1: "2"},
		{name: "plus2 out of range", plus2: "7", plus1: "0"},
		{name: "negative plus1", plus2: "1", plus1: "-1"},
		{name: "unknown ability name", plus2: "luck", plus1: "str"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.ApplyRacialBonus(s.ctx, &v1alpha1.ApplyRacialBonusRequest{
				SessionID: "sess_1",
				Race:      "Halfling",
				Plus2:     tc.plus2,
				Plus1:     tc.plus1,
			})
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))

			got := errors.FromGRPCError(err)
			s.True(errors.Is(got, chargen.ErrInvalidBonusSelection))
			s.Equal(chargen.ReasonInvalidBonusSelection, errors.GetReason(got))
			s.Equal(tc.plus2, errors.GetMeta(got)["plus2"])
		})
	}
}

func (s *HandlerTestSuite) TestApplyRacialBonusAlreadyApplied() {
	s.service.EXPECT().
		ApplyRacialBonus(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(chargen.ErrBonusAlreadyApplied, "bonus"))

	_, err := s.handler.ApplyRacialBonus(s.ctx, &v1alpha1.ApplyRacialBonusRequest{
		SessionID: "sess_1",
		Race:      "Human",
	})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.Is(errors.FromGRPCError(err), chargen.ErrBonusAlreadyApplied))
}

func (s *HandlerTestSuite) TestFinalizeCharacter() {
	character := testutils.CreateTestCharacter("sess_1")
	s.service.EXPECT().
		FinalizeCharacter(s.ctx, &creation.FinalizeCharacterInput{
			SessionID:      "sess_1",
			Name:           testutils.TestCharacterName,
			PlayerName:     testutils.TestPlayerName,
			RaceName:       "Human",
			OccupationName: "Fighter",
			Level:          1,
		}).
		Return(&creation.FinalizeCharacterOutput{Character: character, SessionDeleted: true}, nil)

	resp, err := s.handler.FinalizeCharacter(s.ctx, &v1alpha1.FinalizeCharacterRequest{
		SessionID:  "sess_1",
		Name:       testutils.TestCharacterName,
		PlayerName: testutils.TestPlayerName,
		Race:       "Human",
		Occupation: "Fighter",
		Level:      1,
	})
	s.Require().NoError(err)

	s.True(resp.SessionDeleted)
	s.Equal("char-test-001", resp.Character.ID)
	s.Equal(10, resp.Character.MaxHP)
	s.Require().Len(resp.Character.Abilities, chargen.AbilityCount)
	s.Equal(v1alpha1.AbilityValue{Ability: "strength", Label: "力量", Score: 16, Modifier: 3}, resp.Character.Abilities[0])
	s.Equal(v1alpha1.AbilityValue{Ability: "charisma", Label: "魅力", Score: 9, Modifier: -1}, resp.Character.Abilities[5])
}

func (s *HandlerTestSuite) TestFinalizeCharacterNotReady() {
	s.service.EXPECT().
		FinalizeCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(chargen.ErrCharacterNotReady, "finalize").WithMeta("missing", []string{"wisdom"}))

	_, err := s.handler.FinalizeCharacter(s.ctx, &v1alpha1.FinalizeCharacterRequest{SessionID: "sess_1"})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.Equal(chargen.ReasonCharacterNotReady, errors.GetReason(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestGetCharacterNotFound() {
	s.service.EXPECT().
		GetCharacter(s.ctx, &creation.GetCharacterInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.handler.GetCharacter(s.ctx, &v1alpha1.CharacterRequest{CharacterID: "missing"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.service.EXPECT().
		ListCharacters(s.ctx, &creation.ListCharactersInput{PlayerID: testutils.TestPlayerID}).
		Return(&creation.ListCharactersOutput{Characters: []*chargen.Character{
			testutils.CreateTestCharacter("sess_1"),
		}}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, &v1alpha1.ListCharactersRequest{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(resp.Characters, 1)
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.service.EXPECT().
		DeleteCharacter(s.ctx, &creation.DeleteCharacterInput{CharacterID: "char_1"}).
		Return(&creation.DeleteCharacterOutput{}, nil)

	resp, err := s.handler.DeleteCharacter(s.ctx, &v1alpha1.CharacterRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.NotNil(resp)
}

func (s *HandlerTestSuite) TestExportCharacter() {
	s.service.EXPECT().
		ExportCharacter(s.ctx, &creation.ExportCharacterInput{CharacterID: "char_1", Format: export.FormatJSON}).
		Return(&creation.ExportCharacterOutput{Document: &export.Document{
			FileName:    "Thorin.json",
			ContentType: "application/json",
			Data:        []byte("{}\n"),
		}}, nil)

	resp, err := s.handler.ExportCharacter(s.ctx, &v1alpha1.ExportCharacterRequest{CharacterID: "char_1", Format: "json"})
	s.Require().NoError(err)
	s.Equal("Thorin.json", resp.FileName)
	s.Equal("application/json", resp.ContentType)
	s.Equal([]byte("{}\n"), resp.Data)
}

func (s *HandlerTestSuite) TestPlainErrorsBecomeInternal() {
	s.service.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	_, err := s.handler.GetSession(s.ctx, &v1alpha1.SessionRequest{SessionID: "sess_1"})
	s.Require().Error(err)
	s.Equal(codes.Internal, status.Code(err))
}

// TestClientRoundTrip drives the handler through a real gRPC server so the
// JSON codec and error details are exercised on the wire.
func (s *HandlerTestSuite) TestClientRoundTrip() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterCharacterCreationServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewCharacterCreationServiceClient(conn)

	session := testutils.CreateTestSession("sess_1")
	s.service.EXPECT().
		GetSession(gomock.Any(), &creation.GetSessionInput{SessionID: "sess_1"}).
		Return(&creation.GetSessionOutput{Session: session}, nil)

	resp, err := client.GetSession(s.ctx, &v1alpha1.SessionRequest{SessionID: "sess_1"})
	s.Require().NoError(err)
	s.Equal("sess_1", resp.Session.ID)
	s.Equal([]int{15, 14, 13, 12, 10, 8}, resp.Session.Pool)

	s.service.EXPECT().
		RollAbilityScores(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(chargen.ErrBonusAlreadyApplied, "reroll"))

	_, err = client.RollAbilityScores(s.ctx, &v1alpha1.SessionRequest{SessionID: "sess_1"})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.Is(errors.FromGRPCError(err), chargen.ErrBonusAlreadyApplied))
}
