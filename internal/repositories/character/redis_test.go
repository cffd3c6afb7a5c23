package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
	character "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils/builders"
)

const (
	testCharID     = "char_123"
	testPlayerID   = "player_456"
	testSessionID  = "session_789"
	testCharKey    = "character:char_123"
	testPlayerKey  = "character:player:player_456"
	testSessionKey = "character:session:session_789"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    character.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testCharacter() *chargen.Character {
	return builders.NewCharacterBuilder().
		WithID(testCharID).
		WithSessionID(testSessionID).
		WithPlayerID(testPlayerID).
		Build()
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create", func() {
		output, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})

		s.Require().NoError(err)
		s.Equal(s.clock.Now(), output.Character.CreatedAt)
		s.True(s.mr.Exists(testCharKey))
		members, err := s.mr.Members(testPlayerKey)
		s.Require().NoError(err)
		s.Equal([]string{testCharID}, members)
		sessionIndex, err := s.mr.Get(testSessionKey)
		s.Require().NoError(err)
		s.Equal(testCharID, sessionIndex)
	})

	s.Run("error when character already exists", func() {
		output, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})

		s.Nil(output)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("error when session already has a character", func() {
		c := s.testCharacter()
		c.ID = "char_other"

		output, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})

		s.Nil(output)
		s.True(errors.IsAlreadyExists(err))
		s.False(s.mr.Exists("character:char_other"))
	})

	s.Run("error when character is nil", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "character cannot be nil")
	})

	s.Run("error when character ID is empty", func() {
		c := s.testCharacter()
		c.ID = ""
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("error when session ID is empty", func() {
		c := s.testCharacter()
		c.ID = "char_nosession"
		c.SessionID = ""
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	s.Run("by id", func() {
		got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal(created.Character.Scores, got.Character.Scores)
		s.Equal(created.Character.Modifiers, got.Character.Modifiers)
		s.Equal(created.Character.Name, got.Character.Name)
		s.Equal(created.Character.MaxHP, got.Character.MaxHP)
		s.True(created.Character.CreatedAt.Equal(got.Character.CreatedAt))
	})

	s.Run("by session", func() {
		got, err := s.repo.GetBySessionID(s.ctx, character.GetBySessionIDInput{SessionID: testSessionID})
		s.Require().NoError(err)
		s.Equal(testCharID, got.Character.ID)
	})

	s.Run("missing", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})
		s.True(errors.IsNotFound(err))

		_, err = s.repo.GetBySessionID(s.ctx, character.GetBySessionIDInput{SessionID: "nope"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty ids", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.GetBySessionID(s.ctx, character.GetBySessionIDInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)

	s.False(s.mr.Exists(testCharKey))
	s.False(s.mr.Exists(testSessionKey))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	second := builders.NewCharacterBuilder().
		WithID("char_second").
		WithSessionID("session_other").
		WithPlayerID(testPlayerID).
		WithRace(testutils.TestHalfling()).
		WithOccupation(testutils.TestWizard()).
		WithLevel(3).
		Build()
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: second})
	s.Require().NoError(err)

	// a dangling index entry is skipped and cleaned up
	_, err = s.mr.SAdd(testPlayerKey, "char_gone")
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)

	members, err := s.mr.Members(testPlayerKey)
	s.Require().NoError(err)
	s.NotContains(members, "char_gone")

	_, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}
