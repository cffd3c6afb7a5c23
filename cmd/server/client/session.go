package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
)

var (
	playerID   string
	bonusPlus2 string
	bonusPlus1 string
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a creation session with a freshly rolled pool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return sessionCall(cmd, "failed to create session", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.CreateSession(ctx, &v1alpha1.CreateSessionRequest{PlayerID: playerID})
		})
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session [session-id]",
	Short: "Show a creation session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCall(cmd, "failed to get session", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.GetSession(ctx, &v1alpha1.SessionRequest{SessionID: args[0]})
		})
	},
}

var rerollCmd = &cobra.Command{
	Use:   "reroll [session-id]",
	Short: "Replace the pool with six new 4d6-drop-lowest rolls",
	Long: `Replace the pool with six new rolls. Every assignment is cleared and a racial
bonus that was already applied is undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCall(cmd, "failed to reroll", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.RollAbilityScores(ctx, &v1alpha1.SessionRequest{SessionID: args[0]})
		})
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign [session-id] [ability] [value]",
	Short: "Place a pool value in an ability slot",
	Long: `Place a pool value in an ability slot. The ability may be a full name, an
abbreviation, a sheet label or a slot index.

  Example: assign sess_123 dex 15`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("value must be a number, got %q", args[2])
		}
		return sessionCall(cmd, "failed to assign score", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.AssignAbilityScore(ctx, &v1alpha1.AssignAbilityScoreRequest{
				SessionID: args[0],
				Ability:   args[1],
				Value:     value,
			})
		})
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign [session-id] [ability]",
	Short: "Empty an ability slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCall(cmd, "failed to unassign score", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.UnassignAbilityScore(ctx, &v1alpha1.UnassignAbilityScoreRequest{
				SessionID: args[0],
				Ability:   args[1],
			})
		})
	},
}

var bonusCmd = &cobra.Command{
	Use:   "bonus [session-id] [race]",
	Short: "Apply a race's ability bonus",
	Long: `Apply a race's ability bonus once every slot is filled. Choice races need
--plus2 and --plus1.

  Example: bonus sess_123 Halfling --plus2 dex --plus1 cha`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionCall(cmd, "failed to apply bonus", func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error) {
			return c.ApplyRacialBonus(ctx, &v1alpha1.ApplyRacialBonusRequest{
				SessionID: args[0],
				Race:      args[1],
				Plus2:     bonusPlus2,
				Plus1:     bonusPlus1,
			})
		})
	},
}

func init() {
	createSessionCmd.Flags().StringVar(&playerID, "player-id", "", "Player that owns the session")
	bonusCmd.Flags().StringVar(&bonusPlus2, "plus2", "", "Ability that receives +2")
	bonusCmd.Flags().StringVar(&bonusPlus1, "plus1", "", "Ability that receives +1")
}

type sessionFunc func(ctx context.Context, c v1alpha1.CharacterCreationServiceClient) (*v1alpha1.SessionResponse, error)

func sessionCall(cmd *cobra.Command, action string, call sessionFunc) error {
	client, cleanup, err := createCreationClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(ctx, client)
	if err != nil {
		return requestError(action, err)
	}
	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	renderSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func renderSession(w io.Writer, s *v1alpha1.Session) {
	if s == nil {
		return
	}

	fmt.Fprintf(w, "Session %s\n", s.ID)
	fmt.Fprintf(w, "Rolls (4d6 drop lowest):\n")
	for i, r := range s.Rolls {
		fmt.Fprintf(w, "  %d. %v drop %s = %d\n", i+1, r.Dice, droppedFace(r), r.Total)
	}
	fmt.Fprintf(w, "Pool: %s\n", joinInts(s.Pool))
	fmt.Fprintf(w, "Remaining: %s\n", joinInts(s.Remaining))

	fmt.Fprintf(w, "Abilities:\n")
	for _, slot := range s.Slots {
		score := "-"
		if slot.Score != 0 {
			score = strconv.Itoa(slot.Score)
		}
		fmt.Fprintf(w, "  %s %-12s %s\n", slot.Label, slot.Ability, score)
	}

	switch {
	case s.BonusApplied:
		fmt.Fprintf(w, "Racial bonus: applied (%s)\n", s.BonusRace)
	case s.Complete:
		fmt.Fprintf(w, "Racial bonus: ready to apply\n")
	default:
		fmt.Fprintf(w, "Racial bonus: assign every ability first\n")
	}
}

func droppedFace(r v1alpha1.AbilityRoll) string {
	if r.DroppedIndex < 0 || r.DroppedIndex >= len(r.Dice) {
		return "?"
	}
	return strconv.Itoa(r.Dice[r.DroppedIndex])
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "(none)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
