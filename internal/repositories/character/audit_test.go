package character_test

import (
	"encoding/json"

	character "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

func (s *RedisRepositoryTestSuite) TestAuditCleanStore() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	report, err := character.Audit(s.ctx, s.client, true, nil)
	s.Require().NoError(err)

	s.Equal(1, report.Checked)
	s.Empty(report.Findings)
	s.Empty(report.Removed)
	s.True(s.mr.Exists(testCharKey))
}

func (s *RedisRepositoryTestSuite) TestAuditReportsWithoutFix() {
	s.Require().NoError(s.mr.Set("character:char_bad", "{not json"))

	report, err := character.Audit(s.ctx, s.client, false, nil)
	s.Require().NoError(err)

	s.Equal(1, report.Checked)
	s.Require().Len(report.Findings, 1)
	s.Equal("character:char_bad", report.Findings[0].Key)
	s.Contains(report.Findings[0].Problem, "corrupted JSON")
	s.Empty(report.Removed)
	s.True(s.mr.Exists("character:char_bad"))
}

func (s *RedisRepositoryTestSuite) TestAuditFixRemovesBrokenRecords() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	broken := s.testCharacter()
	broken.ID = "char_broken"
	broken.SessionID = "session_broken"
	broken.Scores[0] = 40
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: broken})
	s.Require().NoError(err)

	mismatched := s.testCharacter()
	mismatched.ID = "char_elsewhere"
	data, err := json.Marshal(mismatched)
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set("character:char_moved", string(data)))

	report, err := character.Audit(s.ctx, s.client, true, nil)
	s.Require().NoError(err)

	s.Equal(3, report.Checked)
	s.Len(report.Findings, 2)
	s.ElementsMatch([]string{"character:char_broken", "character:char_moved"}, report.Removed)

	s.True(s.mr.Exists(testCharKey))
	s.False(s.mr.Exists("character:char_broken"))
	s.False(s.mr.Exists("character:session:session_broken"))
	s.False(s.mr.Exists("character:char_moved"))

	// the valid character keeps its session claim
	owner, err := s.mr.Get(testSessionKey)
	s.Require().NoError(err)
	s.Equal(testCharID, owner)

	members, err := s.mr.Members(testPlayerKey)
	s.Require().NoError(err)
	s.Equal([]string{testCharID}, members)
}

func (s *RedisRepositoryTestSuite) TestAuditRequiresClient() {
	_, err := character.Audit(s.ctx, nil, false, nil)
	s.Require().Error(err)
}
