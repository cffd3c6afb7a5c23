package character

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
)

// AuditFinding describes one unusable character record
type AuditFinding struct {
	Key     string
	Problem string
}

// AuditReport summarises a scan of stored characters
type AuditReport struct {
	Checked  int
	Findings []AuditFinding
	// Removed lists keys deleted when the audit ran with fix set
	Removed []string
}

// Audit scans every stored character. Records that fail to decode or whose
// contents break character invariants are reported, and deleted along with
// their index entries when fix is set.
func Audit(ctx context.Context, client redisclient.Client, fix bool, logger *zap.Logger) (*AuditReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &AuditReport{}
	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if isIndexKey(key) {
			continue
		}
		report.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redisclient.Nil) {
				// deleted since the scan saw it
				continue
			}
			return report, errors.Wrapf(err, "failed to read %s", key)
		}

		c, problem := inspect(key, data)
		if problem == "" {
			continue
		}

		logger.Warn("unusable character record", zap.String("key", key), zap.String("problem", problem))
		report.Findings = append(report.Findings, AuditFinding{Key: key, Problem: problem})

		if fix {
			if err := remove(ctx, client, key, c); err != nil {
				return report, err
			}
			report.Removed = append(report.Removed, key)
		}
	}
	if err := iter.Err(); err != nil {
		return report, errors.Wrap(err, "failed to scan characters")
	}

	return report, nil
}

func isIndexKey(key string) bool {
	return strings.HasPrefix(key, playerIndexPrefix) || strings.HasPrefix(key, sessionIndexPrefix)
}

// inspect returns the decoded character, when decoding worked, and a
// description of what is wrong with it
func inspect(key, data string) (*chargen.Character, string) {
	var c chargen.Character
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, "corrupted JSON: " + err.Error()
	}
	if want := strings.TrimPrefix(key, characterKeyPrefix); c.ID != want {
		return &c, "stored id " + c.ID + " does not match key"
	}
	if err := c.Check(); err != nil {
		return &c, err.Error()
	}
	return &c, ""
}

func remove(ctx context.Context, client redisclient.Client, key string, c *chargen.Character) error {
	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	if c != nil {
		id := strings.TrimPrefix(key, characterKeyPrefix)
		if c.SessionID != "" {
			sessionKey := sessionIndexPrefix + c.SessionID
			// only drop the session claim if it points at this record
			if owner, err := client.Get(ctx, sessionKey).Result(); err == nil && owner == id {
				pipe.Del(ctx, sessionKey)
			}
		}
		if c.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+c.PlayerID, id)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}
