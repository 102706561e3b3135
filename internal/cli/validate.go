package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"llm-game-gen/internal/app"
)

type validateOptions struct {
	Pack string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a game data pack against the schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pack, "pack", "", "Pack file path")
	_ = cmd.MarkFlagRequired("pack")
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(app.ValidateRequest{PackPath: opts.Pack})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s (%d rooms, %d items)\n", result.PackName, result.Rooms, result.Items)
	fmt.Printf("objective: %s\n", result.Objective)
	fmt.Printf("starting room: %s\n", result.StartingRoom)
	return nil
}
