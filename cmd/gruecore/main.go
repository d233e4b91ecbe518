// Gruecore is a single-player text adventure set in the Great
// Underground Empire.
// Usage: gruecore [--version] [--plain] [--seed <n>] [--script <file>] [<content_directory>]
package main

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/telkar/gruecore/cli"
	"github.com/telkar/gruecore/content"
	"github.com/telkar/gruecore/engine"
	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/loader"
	"github.com/telkar/gruecore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seed := time.Now().UnixNano()
	var contentDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("gruecore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if contentDir == "" {
				contentDir = args[i]
			}
		}
	}

	// Built-in world by default; a content directory overrides it.
	var fsys fs.FS = content.FS()
	if contentDir != "" {
		fsys = os.DirFS(contentDir)
	}

	world, err := loader.Load(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	// Restart rebuilds the world from the same content.
	fresh := func() *state.World {
		w, err := loader.Load(fsys)
		if err != nil {
			// Content was already loaded once; a failure here means the
			// directory changed underneath us.
			fmt.Fprintf(os.Stderr, "Error reloading game: %v\n", err)
			os.Exit(1)
		}
		return w
	}

	game := engine.New(world, fresh, seed)

	// Script mode: read commands from file, force plain, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(game)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		cli.New(game).Run()
		return
	}

	if err := tui.Run(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
