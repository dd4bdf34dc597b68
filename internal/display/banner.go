package display

import (
	"fmt"
	"os"

	"github.com/backmassage/photofix/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _           _        _____ _
|  _ \| |__   ___ | |_ ___ |  ___(_)_  __
| |_) | '_ \ / _ \| __/ _ \| |_  | \ \/ /
|  __/| | | | (_) | || (_) |  _| | |>  <
|_|   |_| |_|\___/ \__\___/|_|   |_/_/\_\
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
