package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// Prompt prints a label and reads a single trimmed line. If EOF occurs
// after some input was read, the partial line is returned.
func Prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptDefault reads a line and falls back to def when the user just
// presses Enter.
func PromptDefault(reader *bufio.Reader, label, def string) (string, error) {
	v, err := Prompt(reader, label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// PromptPassword reads a password from the terminal without echo.
func PromptPassword(label string) (string, error) {
	fmt.Print(label)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
