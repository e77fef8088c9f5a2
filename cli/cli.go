// Package cli is the interactive front end of the assistant: it tokenizes
// command lines, dispatches them to the contact book service and formats
// replies. All contact logic lives in the addressbook package.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"assistant/addressbook"
)

type CLI struct {
	svc addressbook.Service
	in  io.Reader
	out io.Writer
}

func New(svc addressbook.Service, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: in, out: out}
}

// Run reads commands until close/exit or end of input. Command failures
// are reported and the loop continues; only I/O errors end the session
// abnormally.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "Enter a command: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(c.out, "Empty input. Please try again.")
			continue
		}

		command, args := parseInput(line)
		if command == "close" || command == "exit" {
			fmt.Fprintln(c.out, "Good bye!")
			return nil
		}

		fmt.Fprintln(c.out, c.dispatch(ctx, command, args))
	}
}

// parseInput splits a line into the lowercased command word and its
// arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
