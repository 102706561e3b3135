package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llm-game-gen/internal/app"
)

type verifyOptions struct {
	DataDir  string
	LockFile string
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify pack files against the lock file digests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "game_data", "Game data directory")
	cmd.Flags().StringVar(&opts.LockFile, "lock-file", "packs.lock", "Lock file path")

	_ = viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("lock-file"))

	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, opts verifyOptions) error {
	service := newAppService()
	result, err := service.Verify(ctx, app.VerifyRequest{
		DataDir:  resolveString(cmd, opts.DataDir, "data_dir", "data-dir"),
		LockPath: resolveString(cmd, opts.LockFile, "lock_file", "lock-file"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("verified: %d of %d records\n", result.Verified, result.Records)
	return nil
}
