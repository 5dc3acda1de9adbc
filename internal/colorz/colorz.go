/*
Package colorz defines ANSI terminal escape sequences.
*/
package colorz

import "fmt"

// ANSI sequences.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Black = "\033[30m"
)

// Background returns a 24-bit background color sequence.
func Background(r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}
