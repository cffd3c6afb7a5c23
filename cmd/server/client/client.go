// Package client provides commands that drive the character creation gRPC
// service
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/messages"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Output flags
	lang       string
	outputJSON bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character creation service",
	Long:  `Client commands walk through character creation by making real gRPC requests.`,
	// Errors are printed translated by the commands themselves
	SilenceUsage: true,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&lang, "lang", "en", "Language for error messages (en, zh)")
	ClientCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print raw JSON responses")

	// Reference data
	ClientCmd.AddCommand(listRacesCmd)
	ClientCmd.AddCommand(listOccupationsCmd)

	// Session commands
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)
	ClientCmd.AddCommand(rerollCmd)
	ClientCmd.AddCommand(assignCmd)
	ClientCmd.AddCommand(unassignCmd)
	ClientCmd.AddCommand(bonusCmd)

	// Character commands
	ClientCmd.AddCommand(finalizeCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(exportCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createCreationClient creates a character creation service client
func createCreationClient() (v1alpha1.CharacterCreationServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewCharacterCreationServiceClient(conn), cleanup, nil
}

// languageTag resolves --lang, falling back to English
func languageTag() language.Tag {
	tag, _ := messages.ParseTag(lang)
	return tag
}

// requestError turns a failed call into a message in the selected language
func requestError(action string, err error) error {
	return fmt.Errorf("%s: %s", action, messages.Describe(languageTag(), errors.FromGRPCError(err)))
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
