package export

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// JSON encodes the sheet with two-space indentation and a trailing newline
func JSON(sheet chargen.Sheet) ([]byte, error) {
	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character sheet")
	}
	return append(data, '\n'), nil
}
