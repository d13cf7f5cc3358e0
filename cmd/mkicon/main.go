// mkicon rasterizes icons/icon.svg into icons/icon16.png, icons/icon48.png
// and icons/icon128.png, creating icons/ if needed.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/mkicon/internal/config"
	"github.com/Mavwarf/mkicon/internal/convert"
)

func main() {
	if err := run(os.Stderr, term.IsTerminal(int(os.Stderr.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run converts the fixed icon set. Progress goes to stderr only when it is
// an interactive terminal.
func run(stderr io.Writer, interactive bool) error {
	var log io.Writer
	if interactive {
		log = stderr
	}
	return convert.New(config.Default(), log).Run()
}
