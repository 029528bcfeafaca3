// Package greeter builds the greeting line printed by the app.
package greeter

import (
	"fmt"
	"io"
)

// Stranger is greeted when the invocation does not carry exactly one name.
const Stranger = "STRANGER"

// Name returns the name to greet. Only a single argument counts as a name;
// zero or several arguments fall back to Stranger.
func Name(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return Stranger
}

// Message returns the greeting without trailing newline.
func Message(args []string) string {
	return fmt.Sprintf("Hello, %s!", Name(args))
}

// Run writes the greeting line for args to w.
func Run(w io.Writer, args []string) error {
	_, err := fmt.Fprintln(w, Message(args))
	if err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}
