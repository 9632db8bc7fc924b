package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
	"github.com/netra/gallery/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var fakePhotos int
	var fakeSeed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the seeded gallery as JSON",
		Long: `Load the starter gallery into an empty in-memory store and print every
record as JSON. Use --fake-photos to append generated photos.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fakePhotos < 0 {
				return fmt.Errorf("--fake-photos must not be negative")
			}

			// stdout carries the JSON document
			observability.GetLogger().SetOutput(cmd.ErrOrStderr())

			store := repository.NewMemoryStore(nil)
			if _, err := seed.Load(cmd.Context(), store, fakePhotos, fakeSeed); err != nil {
				return err
			}

			snap, err := seed.Dump(cmd.Context(), store)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		},
	}

	cmd.Flags().IntVar(&fakePhotos, "fake-photos", 0, "number of generated photos to append")
	cmd.Flags().Int64Var(&fakeSeed, "fake-seed", 2023, "random seed for generated photos")

	return cmd
}
