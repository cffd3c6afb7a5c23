package export_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

const expectedJSON = `{
  "name": "Thorin Oakenshield",
  "playerName": "Ana",
  "race": "Human",
  "occupation": "Fighter",
  "level": 1,
  "abilityScores": {
    "力量": 16,
    "敏捷": 15,
    "体质": 14,
    "智力": 13,
    "感知": 11,
    "魅力": 9
  },
  "abilityModifiers": {
    "力量": 3,
    "敏捷": 2,
    "体质": 2,
    "智力": 1,
    "感知": 0,
    "魅力": -1
  },
  "size": "Medium",
  "speed": 30,
  "maxHP": 10,
  "currentHP": 10,
  "tempHP": 0
}
`

type ExportTestSuite struct {
	suite.Suite
	sheet chargen.Sheet
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (s *ExportTestSuite) SetupTest() {
	s.sheet = testutils.CreateTestCharacter("sess-1").Sheet()
}

func (s *ExportTestSuite) TestJSONShapeAndKeyOrder() {
	data, err := export.JSON(s.sheet)
	s.Require().NoError(err)
	s.Equal(expectedJSON, string(data))
}

func (s *ExportTestSuite) TestJSONRoundTripsToSheet() {
	data, err := export.JSON(s.sheet)
	s.Require().NoError(err)

	var decoded chargen.Sheet
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(s.sheet, decoded)
}

func (s *ExportTestSuite) TestRenderJSON() {
	doc, err := export.Render(s.sheet, export.FormatJSON, export.Options{})
	s.Require().NoError(err)
	s.Equal("Thorin Oakenshield.json", doc.FileName)
	s.Equal("application/json", doc.ContentType)
	s.Equal(expectedJSON, string(doc.Data))
}

func (s *ExportTestSuite) TestRenderPDF() {
	doc, err := export.Render(s.sheet, export.FormatPDF, export.Options{})
	s.Require().NoError(err)
	s.Equal("Thorin Oakenshield.pdf", doc.FileName)
	s.Equal("application/pdf", doc.ContentType)
	s.True(bytes.HasPrefix(doc.Data, []byte("%PDF-")))
}

func (s *ExportTestSuite) TestPDFWithNonLatinName() {
	s.sheet.Name = "Brünhilde"
	data, err := export.PDF(s.sheet, export.Options{})
	s.Require().NoError(err)
	s.NotEmpty(data)
}

func (s *ExportTestSuite) TestPDFMissingFont() {
	_, err := export.PDF(s.sheet, export.Options{FontPath: filepath.Join(s.T().TempDir(), "missing.ttf")})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestRenderUnknownFormat() {
	_, err := export.Render(s.sheet, export.Format("docx"), export.Options{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestFileName() {
	testCases := []struct {
		name   string
		format export.Format
		want   string
	}{
		{name: "Aria", format: export.FormatJSON, want: "Aria.json"},
		{name: "", format: export.FormatJSON, want: "character.json"},
		{name: "   ", format: export.FormatPDF, want: "character.pdf"},
		{name: "a/b", format: export.FormatJSON, want: "a_b.json"},
		{name: "..", format: export.FormatJSON, want: "character.json"},
		{name: "阿丽亚", format: export.FormatPDF, want: "阿丽亚.pdf"},
	}
	for _, tc := range testCases {
		s.Run(tc.want, func() {
			s.Equal(tc.want, export.FileName(tc.name, tc.format))
		})
	}
}

func (s *ExportTestSuite) TestParseFormat() {
	f, err := export.ParseFormat("")
	s.Require().NoError(err)
	s.Equal(export.FormatJSON, f)

	f, err = export.ParseFormat(" PDF ")
	s.Require().NoError(err)
	s.Equal(export.FormatPDF, f)

	_, err = export.ParseFormat("xml")
	s.True(errors.IsInvalidArgument(err))
}
