package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// Commands call it only after their summary output has been flushed.
func Exitf(format string, args ...any) {
	exitf(os.Stderr, os.Exit, format, args...)
}

func exitf(w io.Writer, exit func(int), format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(w, msg)
	exit(1)
}
