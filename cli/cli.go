// Package cli provides the plain terminal front end: a prompt loop over
// the engine with word-wrapped output.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/reflow/wordwrap"

	"github.com/telkar/gruecore/engine"
)

// wrapWidth keeps output readable on a classic 80-column terminal.
const wrapWidth = 78

// CLI handles terminal interaction with the player.
type CLI struct {
	Game      *engine.Game
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given game.
func New(g *engine.Game) *CLI {
	return &CLI{
		Game: g,
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

// Run starts the game loop: greeting, intro, starting room, then
// prompt → input → step → output until the player quits or input ends.
func (c *CLI) Run() {
	// One scanner for the whole session; a second one would buffer
	// ahead and swallow lines when input is a script file.
	scanner := bufio.NewScanner(c.In)
	c.askName(scanner)

	if c.Game.World.Intro != "" {
		c.printLine(c.Game.World.Intro)
		c.printLine("")
	}
	c.printLine(c.Game.World.Title)
	c.printLine("")
	for _, line := range c.Game.Look() {
		c.printLine(line)
	}

	// Ctrl-C does not kill the game; QUIT does. signal.Stop does not
	// close the channel, so the goroutine exits on done instead.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer close(done)
	defer signal.Stop(sig)
	go func() {
		for {
			select {
			case <-sig:
				fmt.Fprintln(c.Out, "\nUse QUIT to exit.")
				fmt.Fprint(c.Out, "> ")
			case <-done:
				return
			}
		}
	}()

	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" && !c.Game.Pending() {
			continue
		}
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// "again" / "g" repeats the last game command.
		if !c.Game.Pending() {
			lower := strings.ToLower(input)
			if lower == "again" || lower == "g" {
				if c.lastCmd == "" {
					c.printLine("Nothing to repeat.")
					continue
				}
				input = c.lastCmd
			} else {
				c.lastCmd = input
			}
		}

		result := c.Game.Step(input)
		for _, line := range result.Output {
			c.printLine(line)
		}
		if result.Quit {
			return
		}
	}
}

func (c *CLI) askName(scanner *bufio.Scanner) {
	c.print("What is your name, adventurer? ")
	if scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			c.Game.World.PlayerName = name
		}
	}
	c.printLine(fmt.Sprintf("Welcome, %s!", c.Game.World.PlayerName))
	c.printLine("")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, wordwrap.String(text, wrapWidth))
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
