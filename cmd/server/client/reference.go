package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
)

var listRacesCmd = &cobra.Command{
	Use:   "races",
	Short: "List available races",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListRaces(ctx, &v1alpha1.ListRacesRequest{})
		if err != nil {
			return requestError("failed to list races", err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		renderRaces(cmd.OutOrStdout(), resp.Races)
		return nil
	},
}

var listOccupationsCmd = &cobra.Command{
	Use:   "occupations",
	Short: "List available occupations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := createCreationClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListOccupations(ctx, &v1alpha1.ListOccupationsRequest{})
		if err != nil {
			return requestError("failed to list occupations", err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		renderOccupations(cmd.OutOrStdout(), resp.Occupations)
		return nil
	},
}

func renderRaces(w io.Writer, races []v1alpha1.Race) {
	fmt.Fprintf(w, "%d races\n", len(races))
	for _, r := range races {
		fmt.Fprintf(w, "  %-12s %-8s speed %-3d bonus %s\n", r.Name, r.Size, r.Speed, r.BonusKind)
	}
}

func renderOccupations(w io.Writer, occupations []v1alpha1.Occupation) {
	fmt.Fprintf(w, "%d occupations\n", len(occupations))
	for _, o := range occupations {
		fmt.Fprintf(w, "  %-12s %d HP per level\n", o.Name, o.HPPerLevel)
	}
}
