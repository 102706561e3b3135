package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llm-game-gen/internal/app"
)

type generateOptions struct {
	Spec     string
	DataDir  string
	Backend  string
	Model    string
	Host     string
	Theme    string
	Rooms    int
	Items    int
	Attempts int
	Output   string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a game data pack with an LLM backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Pack spec path")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "game_data", "Game data directory")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "LLM backend (ollama or gemini)")
	cmd.Flags().StringVar(&opts.Model, "model", "", "Model name")
	cmd.Flags().StringVar(&opts.Host, "host", "", "Ollama host URL")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "World theme hint")
	cmd.Flags().IntVar(&opts.Rooms, "rooms", 0, "Room count hint")
	cmd.Flags().IntVar(&opts.Items, "items", 0, "Item count hint")
	cmd.Flags().IntVar(&opts.Attempts, "attempts", 0, "Repair attempt budget")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Pack file name (defaults to a timestamped name)")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("backend", cmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("host", cmd.Flags().Lookup("host"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		DataDir:  resolveString(cmd, opts.DataDir, "data_dir", "data-dir"),
		Backend:  resolveString(cmd, opts.Backend, "backend", "backend"),
		Model:    resolveString(cmd, opts.Model, "model", "model"),
		Host:     resolveString(cmd, opts.Host, "host", "host"),
		Theme:    opts.Theme,
		Rooms:    opts.Rooms,
		Items:    opts.Items,
		Attempts: opts.Attempts,
		Output:   opts.Output,
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: %s (%d rooms, %d items, %d attempt(s))\n",
		result.PackPath, result.Rooms, result.Items, result.Attempts)
	fmt.Println("run `llm-game-gen lock` to pin it before playing")
	return nil
}
