package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llm-game-gen/internal/app"
)

type lockOptions struct {
	Spec    string
	DataDir string
	Output  string
}

func newLockCommand() *cobra.Command {
	opts := lockOptions{}
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Regenerate the pack lock file from the data dir",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLock(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "pack.yaml", "Pack spec path")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "game_data", "Game data directory")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Lock file path (defaults to packs.lock)")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("output"))

	return cmd
}

func runLock(ctx context.Context, cmd *cobra.Command, opts lockOptions) error {
	service := newAppService()
	result, err := service.Lock(ctx, app.LockRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		DataDir:  resolveString(cmd, opts.DataDir, "data_dir", "data-dir"),
		Output:   resolveString(cmd, opts.Output, "lock_file", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("locked: %s (%d records)\n", result.LockPath, result.Records)
	return nil
}
