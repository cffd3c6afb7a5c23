package reference

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// TextSource reads the plain text tables: one race per line as
// "name size speed [flat|choice]" and one occupation per line as
// "name hpPerLevel". Blank lines and lines starting with # are skipped.
type TextSource struct {
	RacesPath       string
	OccupationsPath string
}

var _ Source = (*TextSource)(nil)

// Name identifies the source
func (s *TextSource) Name() string {
	return "text"
}

// Load reads both files
func (s *TextSource) Load(ctx context.Context) (*Tables, error) {
	if s.RacesPath == "" || s.OccupationsPath == "" {
		return nil, errors.InvalidArgument("text source needs both a races and an occupations path")
	}

	races, err := readFile(ctx, s.RacesPath, ParseRaces)
	if err != nil {
		return nil, err
	}
	occupations, err := readFile(ctx, s.OccupationsPath, ParseOccupations)
	if err != nil {
		return nil, err
	}

	return NewTables(s.Name(), races, occupations)
}

func readFile[T any](ctx context.Context, path string, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "reference load canceled")
	}

	f, err := os.Open(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "reference file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open reference file %s", path)
	}
	defer func() { _ = f.Close() }()

	return parse(f, path)
}

// ParseRaces parses race rows. file is used in error messages.
func ParseRaces(r io.Reader, file string) ([]chargen.Race, error) {
	var races []chargen.Race
	err := scanRows(r, file, func(line int, fields []string) error {
		if len(fields) < 3 || len(fields) > 4 {
			return lineError(file, line, "expected \"name size speed [flat|choice]\"")
		}
		speed, err := strconv.Atoi(fields[2])
		if err != nil {
			return lineError(file, line, "speed %q is not an integer", fields[2])
		}
		kind := ""
		if len(fields) == 4 {
			kind = fields[3]
		}
		bonus, err := chargen.ParseBonusKind(kind)
		if err != nil {
			return lineError(file, line, "%s", errors.GetMessage(err))
		}
		races = append(races, chargen.Race{
			Name:      fields[0],
			Size:      fields[1],
			Speed:     speed,
			BonusKind: bonus,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return races, nil
}

// ParseOccupations parses occupation rows. file is used in error messages.
func ParseOccupations(r io.Reader, file string) ([]chargen.Occupation, error) {
	var occupations []chargen.Occupation
	err := scanRows(r, file, func(line int, fields []string) error {
		if len(fields) != 2 {
			return lineError(file, line, "expected \"name hpPerLevel\"")
		}
		hp, err := strconv.Atoi(fields[1])
		if err != nil {
			return lineError(file, line, "hp per level %q is not an integer", fields[1])
		}
		occupations = append(occupations, chargen.Occupation{
			Name:       fields[0],
			HPPerLevel: hp,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return occupations, nil
}

func scanRows(r io.Reader, file string, row func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := row(line, strings.Fields(text)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", file)
	}
	return nil
}

func lineError(file string, line int, format string, args ...interface{}) error {
	return errors.InvalidArgumentf("%s:%d: "+format, append([]interface{}{file, line}, args...)...).
		WithMeta("file", file).
		WithMeta("line", line)
}
