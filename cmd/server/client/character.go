package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
)

var (
	characterName  string
	playerName     string
	raceName       string
	occupationName string
	level          int

	exportFormat string
	exportDir    string
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize [session-id]",
	Short: "Derive and store a character from a finished session",
	Long: `Derive and store a character from a session whose scores are assigned and
whose racial bonus is applied.

  Example: finalize sess_123 --name Merry --player Ana --race Halfling --occupation Rogue`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.FinalizeCharacter(ctx, &v1alpha1.FinalizeCharacterRequest{
			SessionID:  args[0],
			Name:       characterName,
			PlayerName: playerName,
			Race:       raceName,
			Occupation: occupationName,
			Level:      level,
		})
		if err != nil {
			return requestError("failed to finalize character", err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		renderCharacter(cmd.OutOrStdout(), resp.Character)
		if !resp.SessionDeleted {
			fmt.Fprintf(cmd.OutOrStdout(), "\nnote: session %s was not cleaned up and will expire on its own\n", args[0])
		}
		return nil
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetCharacter(ctx, &v1alpha1.CharacterRequest{CharacterID: args[0]})
		if err != nil {
			return requestError("failed to get character", err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		renderCharacter(cmd.OutOrStdout(), resp.Character)
		return nil
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters [player-id]",
	Short: "List a player's characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListCharacters(ctx, &v1alpha1.ListCharactersRequest{PlayerID: args[0]})
		if err != nil {
			return requestError("failed to list characters", err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d characters\n", len(resp.Characters))
		for _, c := range resp.Characters {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s, level %d %s %s\n", c.ID, c.Name, c.Level, c.Race, c.Occupation)
		}
		return nil
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character [character-id]",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.DeleteCharacter(ctx, &v1alpha1.CharacterRequest{CharacterID: args[0]}); err != nil {
			return requestError("failed to delete character", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [character-id]",
	Short: "Export a character sheet as JSON or PDF",
	Long: `Export a character sheet. The file is written to --dir under the name the
server suggests.

  Example: export char_123 --format pdf --dir ./sheets`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ExportCharacter(ctx, &v1alpha1.ExportCharacterRequest{
			CharacterID: args[0],
			Format:      exportFormat,
		})
		if err != nil {
			return requestError("failed to export character", err)
		}

		path, err := writeExport(exportDir, resp)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes)\n", path, resp.ContentType, len(resp.Data))
		return nil
	},
}

func init() {
	finalizeCmd.Flags().StringVar(&characterName, "name", "", "Character name")
	finalizeCmd.Flags().StringVar(&playerName, "player", "", "Player name")
	finalizeCmd.Flags().StringVar(&raceName, "race", "", "Race, must match the bonus already applied")
	finalizeCmd.Flags().StringVar(&occupationName, "occupation", "", "Occupation")
	finalizeCmd.Flags().IntVar(&level, "level", 1, "Character level")

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, pdf)")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Directory to write the sheet to")
}

// writeExport stores the document under dir using only the base of the
// suggested file name
func writeExport(dir string, resp *v1alpha1.ExportCharacterResponse) (string, error) {
	name := filepath.Base(resp.FileName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "character"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, resp.Data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func renderCharacter(w io.Writer, c *v1alpha1.Character) {
	if c == nil {
		return
	}

	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(w, "Player: %s\n", c.PlayerName)
	fmt.Fprintf(w, "Level %d %s %s\n", c.Level, c.Race, c.Occupation)
	fmt.Fprintf(w, "Size %s, speed %d\n", c.Size, c.Speed)
	fmt.Fprintf(w, "HP %d/%d (temp %d)\n", c.CurrentHP, c.MaxHP, c.TempHP)
	fmt.Fprintf(w, "Abilities:\n")
	for _, a := range c.Abilities {
		fmt.Fprintf(w, "  %s %-12s %2d (%+d)\n", a.Label, a.Ability, a.Score, a.Modifier)
	}
}
