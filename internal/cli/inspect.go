package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llm-game-gen/internal/app"
)

type inspectOptions struct {
	LockFile string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect lock file records and their via graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.LockFile, "lock-file", "packs.lock", "Lock file path")
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("lock-file"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		LockPath: resolveString(cmd, opts.LockFile, "lock_file", "lock-file"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("root: %s\n", result.Root)
	fmt.Printf("records: %d\n", len(result.Records))
	for _, record := range result.Records {
		fmt.Printf("- %s==%s (%d hash(es))\n", record.Name, record.Version, record.Hashes)
		if len(record.Via) > 0 {
			fmt.Printf("  via %s\n", strings.Join(record.Via, ", "))
		}
	}
	return nil
}
