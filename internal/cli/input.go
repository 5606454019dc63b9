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
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault is GetSimpleText where an empty answer keeps current.
func GetTextWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	s, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return current, nil
	}
	return s, nil
}

// GetPassword prints a prompt to w and reads a password from the terminal
// without echo. The caller should wipe the returned slice.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetChoice shows numbered options and accepts either a number or the
// option text itself. An empty answer selects current, if non-empty.
func GetChoice(reader *bufio.Reader, prompt string, options []string, current string, w io.Writer) (string, error) {
	for i, o := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}

	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if s == "" && current != "" {
			return current, nil
		}
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, o := range options {
			if strings.EqualFold(o, s) {
				return o, nil
			}
		}
		fmt.Fprintln(w, "Please pick one of the listed options.")
	}
}

// password reads a secret: without echo on a terminal, as a plain line otherwise.
func (a *App) password(prompt string) ([]byte, error) {
	if a.interactive {
		return GetPassword(prompt, a.out)
	}
	s, err := GetSimpleText(a.in, prompt, a.out)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (a *App) text(prompt string) (string, error) {
	return GetSimpleText(a.in, prompt, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
