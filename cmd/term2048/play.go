package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/replay"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagRecord   string
	flagPlayback string
	flagDelay    int
	flagSize     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of 2048",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Recording and playback:
  --record writes one line per effective move, so a finished game can
  be replayed later. --playback replays such a log with a pacing delay.
  With the same --seed a playback reproduces the game exactly. Passing
  both --record and --playback runs headless, without rendering or
  pacing, and writes a fresh log from the replayed moves.

Examples:
  term2048 play
  term2048 play --size 5
  term2048 play --seed 42 --record game.log
  term2048 play --seed 42 --playback game.log --delay 100
  term2048 play --seed 42 --playback game.log --record verify.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record moves to this file")
	playCmd.Flags().StringVar(&flagPlayback, "playback", "", "Replay moves from this file")
	playCmd.Flags().IntVar(&flagDelay, "delay", core.DefaultDelayMS, "Playback delay between moves in milliseconds")
	playCmd.Flags().IntVar(&flagSize, "size", core.DefaultGridSize, "Board size (NxN)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc := core.SessionConfig{
		GridSize:     cfg.Game.GridSize,
		Seed:         flagSeed,
		RecordPath:   flagRecord,
		PlaybackPath: flagPlayback,
		DelayMS:      cfg.Playback.DelayMS,
	}
	if cmd.Flags().Changed("size") {
		sc.GridSize = flagSize
	}
	if cmd.Flags().Changed("delay") {
		sc.DelayMS = flagDelay
	}
	if sc.Seed == 0 {
		sc.Seed = time.Now().UnixNano()
	}
	if sc.GridSize < 2 {
		fmt.Fprintf(os.Stderr, "Error: board size %d is below the minimum of 2\n", sc.GridSize)
		os.Exit(1)
	}

	var sink *replay.Writer
	if sc.RecordPath != "" {
		sink, err = replay.Create(sc.RecordPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	session, err := game.NewSession(sc.GridSize, game.NewSource(sc.Seed), recordSink(sink))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var summary string
	if sc.Batch() {
		var status game.Status
		status, err = runBatch(session, sc)
		g := session.Game()
		summary = fmt.Sprintf("You %s after scoring %d points in %d turns, with largest tile %d",
			status, g.Score, g.Turns, g.MaxTile())
	} else {
		summary, err = runInteractive(session, sc)
	}

	if sink != nil {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary)
}

// recordSink converts a possibly-nil writer into the session's sink
// argument. A typed nil pointer inside a non-nil interface would make
// the session call Append on nothing.
func recordSink(w *replay.Writer) game.RecordSink {
	if w == nil {
		return nil
	}
	return w
}

// runBatch replays a log headless, without rendering or pacing.
func runBatch(session *game.Session, sc core.SessionConfig) (game.Status, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "term2048"})

	reader, err := replay.Open(sc.PlaybackPath)
	if err != nil {
		return session.Status(), err
	}
	defer reader.Close()

	logger.Info("replaying session", "playback", sc.PlaybackPath, "record", sc.RecordPath, "seed", sc.Seed)
	status, err := session.Run(reader)
	if err != nil {
		return status, err
	}
	logger.Info("replay finished", "status", status, "score", session.Game().Score, "turns", session.Game().Turns)
	return status, nil
}

// runInteractive runs the Bubble Tea program for live play or paced
// playback and returns the end-of-game summary line.
func runInteractive(session *game.Session, sc core.SessionConfig) (string, error) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	model := tui.NewModel(session, store)

	switch {
	case sc.PlaybackPath != "":
		reader, err := replay.Open(sc.PlaybackPath)
		if err != nil {
			return "", err
		}
		defer reader.Close()
		model = model.WithPlayback(reader, sc.DelayMS)

	case sc.RecordPath == "":
		// Restarting would not belong to the log on disk, so it is
		// offered only when neither recording nor playing back.
		model = model.WithRestart(func() (*game.Session, error) {
			return game.NewSession(sc.GridSize, game.NewSource(time.Now().UnixNano()), nil)
		})
	}

	final, err := tui.Run(model)
	if err != nil {
		return "", err
	}
	if final.Err() != nil {
		return "", final.Err()
	}
	return final.Summary(), nil
}

// openStore opens the scores database, warning instead of failing: the
// game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// dbPath resolves the database location from the --db flag or config.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Default().Storage.DBPath
	}
	return cfg.Storage.DBPath
}
