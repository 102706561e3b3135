package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llm-game-gen/internal/app"
	"llm-game-gen/internal/core"
	"llm-game-gen/internal/types"
)

type playOptions struct {
	Pack       string
	DataDir    string
	LockFile   string
	SkipVerify bool
}

func newPlayCommand() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game from a verified data pack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Pack, "pack", "", "Pack file path (prompts for a selection when omitted)")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "game_data", "Game data directory")
	cmd.Flags().StringVar(&opts.LockFile, "lock-file", "packs.lock", "Lock file path")
	cmd.Flags().BoolVar(&opts.SkipVerify, "skip-verify", false, "Skip lock file verification")

	_ = viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("lock_file", cmd.Flags().Lookup("lock-file"))

	return cmd
}

func runPlay(ctx context.Context, cmd *cobra.Command, opts playOptions) error {
	service := newAppService()
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	dataDir := resolveString(cmd, opts.DataDir, "data_dir", "data-dir")

	if !opts.SkipVerify {
		if _, err := service.Verify(ctx, app.VerifyRequest{
			DataDir:  dataDir,
			LockPath: resolveString(cmd, opts.LockFile, "lock_file", "lock-file"),
		}); err != nil {
			return err
		}
	}

	packPath := strings.TrimSpace(opts.Pack)
	if packPath == "" {
		selected, err := selectPack(service, dataDir, in, out)
		if err != nil {
			return err
		}
		packPath = selected
	}

	loaded, err := service.Load(app.LoadRequest{PackPath: packPath})
	if err != nil {
		return err
	}
	player := core.NewPlayer(loaded.Data)
	return runGame(in, out, player, loaded.Data)
}

// selectPack mirrors the original interactive loader: list the packs in
// the data dir and ask for a 1-based index.
func selectPack(service app.Service, dataDir string, in io.Reader, out io.Writer) (string, error) {
	paths, err := service.Store.ListPacks(dataDir)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("there are no `.json` files found in %s", dataDir))
	}

	fmt.Fprintln(out, "Select a game data file to load:")
	for idx, path := range paths {
		fmt.Fprintf(out, "%d. %s\n", idx+1, path)
	}
	fmt.Fprint(out, "> ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no selection provided")
	}
	selected, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || selected < 1 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("provide a valid index >= 1")
	}
	if selected > len(paths) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("there is no game data file with index %d", selected))
	}
	return paths[selected-1], nil
}

func gameInfo(data types.GameData) string {
	return fmt.Sprintf(`
--------------------
Available commands:
`+"`rooms`"+`
    Check the connections of the current room.
`+"`items`"+`
    Check the items of the current room.
`+"`inventory`"+`
    Check the inventory.
`+"`go 'idx'`"+`
    Go to the room with index 'idx' in the connections of the current room.
`+"`take 'idx'`"+`
    Take the item with index 'idx' from the current room.
`+"`help`, `?`"+`
    Show this message.
`+"`quit`, `exit`"+`
    Exit the game.

Objective: %s
Starting room: %s
--------------------
`, data.Objective, data.StartingRoom)
}

// runGame drives the command loop until the player finds the objective
// or quits.
func runGame(in io.Reader, out io.Writer, player *core.Player, data types.GameData) error {
	info := gameInfo(data)
	fmt.Fprintln(out, info)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			fmt.Fprintln(out, "Command is not recognized.")
			continue
		}
		switch fields[0] {
		case "rooms":
			fmt.Fprintln(out, player.CheckRooms())
		case "items":
			fmt.Fprintln(out, player.CheckItems())
		case "inventory":
			fmt.Fprintln(out, player.CheckInventory())
		case "go":
			idx, ok := parseIndex(fields)
			if !ok {
				fmt.Fprintln(out, "Provide a valid index >= 1.")
				continue
			}
			fmt.Fprintln(out, player.Go(idx))
		case "take":
			idx, ok := parseIndex(fields)
			if !ok {
				fmt.Fprintln(out, "Provide a valid index >= 1.")
				continue
			}
			result, found := player.TakeItem(idx)
			fmt.Fprintln(out, result)
			if found {
				return nil
			}
		case "help", "?":
			fmt.Fprintln(out, info)
		case "quit", "exit":
			fmt.Fprintln(out, "Thanks for playing!")
			return nil
		default:
			fmt.Fprintln(out, "Command is not recognized.")
		}
	}
}

func parseIndex(fields []string) (int, bool) {
	if len(fields) < 2 {
		return 0, false
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil || idx < 1 {
		return 0, false
	}
	return idx, true
}
