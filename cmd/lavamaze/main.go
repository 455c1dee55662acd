// lavamaze is a terminal maze game: escape a lava-filled maze by
// collecting keys and reaching the exit, pushing boxes out of the way.
//
// Usage:
//
//	lavamaze play            - Play in the current terminal
//	lavamaze serve           - Start SSH server for remote play
//	lavamaze scores          - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.lavamaze/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/lavamaze/internal/games/lavamaze"
)

const gameID = "lavamaze"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavamaze",
	Short: "Lava Maze - escape the maze in your terminal",
	Long: `Lava Maze is a terminal game. A randomly generated maze stands
between you and the exit: collect every key, push boxes out of your
way, and stay off the lava.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  lavamaze play
  lavamaze play --seed 42
  lavamaze serve --ssh :2222
  lavamaze scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lavamaze/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
