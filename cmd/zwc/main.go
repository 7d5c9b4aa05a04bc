// Command zwc hides a payload inside a cover string, or recovers one
// that was hidden earlier.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/raftario/zwc"
)

// exitIOError is returned to the shell when reading stdin fails,
// matching the sysexits.h EX_IOERR convention.
const exitIOError = 74

// stdinReadError distinguishes a stdin read failure from any other
// pipeline error so main can select the right exit code.
type stdinReadError struct {
	err error
}

func (e *stdinReadError) Error() string { return fmt.Sprintf("reading stdin: %v", e.err) }
func (e *stdinReadError) Unwrap() error { return e.err }

func main() {
	app := &cli.App{
		Name:  "zwc",
		Usage: "hide a payload inside a cover string using zero-width characters",
		Commands: []*cli.Command{
			camouflageCommand(),
			decamouflageCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		var stdinErr *stdinReadError
		if errors.As(err, &stdinErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitIOError)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func camouflageCommand() *cli.Command {
	return &cli.Command{
		Name:      "camouflage",
		Aliases:   []string{"c"},
		Usage:     "hide PAYLOAD (or stdin) inside DUMMY",
		ArgsUsage: "DUMMY [PAYLOAD]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "encrypt the payload with this passphrase"},
			&cli.IntFlag{Name: "compression-level", Aliases: []string{"c"}, Value: zwc.DefaultCompressionLevel, Usage: "Brotli quality (0-11)"},
		},
		Action: func(c *cli.Context) error {
			dummy := c.Args().Get(0)
			if dummy == "" {
				return fmt.Errorf("zwc: DUMMY is required")
			}

			var payload []byte
			if c.Args().Len() >= 2 {
				payload = []byte(c.Args().Get(1))
			} else {
				log.Print("reading payload from stdin")
				p, err := io.ReadAll(os.Stdin)
				if err != nil {
					return &stdinReadError{err: err}
				}
				payload = p
			}

			var key *string
			if c.IsSet("key") {
				k := c.String("key")
				key = &k
			}
			level := c.Int("compression-level")

			camouflaged, err := zwc.Camouflage(payload, dummy, key, &level)
			if err != nil {
				return err
			}

			fmt.Println(camouflaged)
			return nil
		},
	}
}

func decamouflageCommand() *cli.Command {
	return &cli.Command{
		Name:      "decamouflage",
		Aliases:   []string{"d"},
		Usage:     "recover the payload hidden inside CAMOUFLAGED (or stdin)",
		ArgsUsage: "[CAMOUFLAGED]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "decrypt the payload with this passphrase"},
		},
		Action: func(c *cli.Context) error {
			var camouflaged string
			if c.Args().Len() >= 1 {
				camouflaged = c.Args().Get(0)
			} else {
				log.Print("reading camouflaged text from stdin")
				p, err := io.ReadAll(os.Stdin)
				if err != nil {
					return &stdinReadError{err: err}
				}
				camouflaged = string(p)
			}

			var key *string
			if c.IsSet("key") {
				k := c.String("key")
				key = &k
			}

			payload, err := zwc.Decamouflage(camouflaged, key)
			if err != nil {
				return err
			}

			os.Stdout.Write(payload)
			return nil
		},
	}
}
