// Command termview drives a termcore.Terminal from a real program
// instead of the network transport spec.md treats as external
// (spec.md §1 "Out of scope: The transport that delivers input
// bytes"). It spawns the user's shell behind a PTY, feeds its output
// byte-for-byte into the core, and renders the live grid plus title
// and button labels to stdout — the same role the teacher's
// examples/basic and examples/screenshot commands play, generalized
// from printing a headless buffer to actually driving the embedded
// core end to end. Grounded on creack/pty usage across the pack
// (codelaboratoryltd-terminal/term_unix.go, javanhut-RavenTerminal
// shell/pty.go) and the spf13/cobra command-tree convention used
// throughout the retrieved manifests.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/espterm/termcore"
	"github.com/espterm/termcore/config"
	"github.com/espterm/termcore/grid"
)

var (
	flagCols    int
	flagRows    int
	flagShell   string
	flagVerbose bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termview",
		Short: "Drive a termcore.Terminal from a real shell over a PTY",
		RunE:  runTermview,
	}
	cmd.Flags().IntVar(&flagCols, "cols", 80, "terminal width (clamped to 80)")
	cmd.Flags().IntVar(&flagRows, "rows", 24, "terminal height (clamped to 25)")
	cmd.Flags().StringVar(&flagShell, "shell", "", "shell to run (defaults to $SHELL)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log notifications, bells and reply write errors to stderr")
	return cmd
}

func runTermview(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.Disabled)
	if flagVerbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	shell := flagShell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	baseline := config.Defaults()
	baseline.Width = int32(flagCols)
	baseline.Height = int32(flagRows)
	baseline.Title = "termview"

	c := exec.Command(shell)
	c.Env = append(os.Environ(), "TERM=xterm")

	ptmx, err := pty.StartWithSize(c, &pty.Winsize{
		Rows: uint16(baseline.Height),
		Cols: uint16(baseline.Width),
	})
	if err != nil {
		return fmt.Errorf("termview: start pty: %w", err)
	}
	defer ptmx.Close()

	term := termcore.New(
		termcore.WithConfig(baseline),
		termcore.WithEmit(func(b []byte) {
			if _, err := ptmx.Write(b); err != nil {
				logger.Debug().Err(err).Msg("emit write failed")
			}
		}),
		termcore.WithNotify(func(topic string) {
			logger.Debug().Str("topic", topic).Msg("notify")
		}),
		termcore.WithBell(func() {
			logger.Debug().Msg("bell")
		}),
	)

	restoreStdin := enableRawStdin(logger)
	defer restoreStdin()

	copyStdinDone := make(chan struct{})
	go func() {
		defer close(copyStdinDone)
		io.Copy(ptmx, os.Stdin)
	}()

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			term.Feed(buf[:n])
			renderScreen(term)
		}
		if err != nil {
			break
		}
	}

	renderScreen(term)
	return c.Wait()
}

// enableRawStdin puts the controlling terminal into raw mode so
// keystrokes reach the child shell unprocessed, restoring it on
// return. If stdin is not a terminal (e.g. piped input in tests),
// it's a no-op.
func enableRawStdin(logger zerolog.Logger) func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debug().Err(err).Msg("raw mode unavailable")
		return func() {}
	}
	return func() { term.Restore(fd, old) }
}

// renderScreen prints the grid and title/labels as plain text — a
// minimal stand-in for the wire serializer spec.md §1 treats as
// external. One rune per cell, trailing blanks trimmed per row.
func renderScreen(t *termcore.Terminal) {
	g := t.Grid()
	fmt.Print("\x1b[H\x1b[2J")
	fmt.Printf("title: %s\n", t.Title())

	var labels []string
	for i := 0; i < config.NumButtons; i++ {
		if l := t.ButtonLabel(i); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) > 0 {
		fmt.Printf("buttons: %s\n", strings.Join(labels, " | "))
	}

	for row := 0; row < g.Height(); row++ {
		fmt.Println(lineText(g, row))
	}
}

func lineText(g *grid.Grid, row int) string {
	var b strings.Builder
	last := -1
	for col := 0; col < g.Width(); col++ {
		r := g.Cell(row, col).Rune()
		if r != ' ' {
			last = col
		}
	}
	for col := 0; col <= last; col++ {
		b.WriteRune(g.Cell(row, col).Rune())
	}
	return b.String()
}
