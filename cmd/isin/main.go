package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/webmobix/isin"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "isin:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "isin",
		Usage: "Encode, decode and verify ISIN-shaped identifiers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "case",
				Aliases: []string{"c"},
				Usage:   "Case policy for input: strict or fold",
				Value:   string(isin.CaseStrict),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a 12-character identifier to its numeric value",
				ArgsUsage: "<identifier>",
				Action:    runEncode,
			},
			{
				Name:      "decode",
				Usage:     "Decode a numeric value to its 12-character identifier",
				ArgsUsage: "<value>",
				Action:    runDecode,
			},
			{
				Name:      "validate",
				Usage:     "Check identifier shape (length and character set)",
				ArgsUsage: "<identifier>",
				Action:    runValidate,
			},
			{
				Name:      "check-digit",
				Usage:     "Compute the check digit for an 11-character prefix",
				ArgsUsage: "<prefix>",
				Action:    runCheckDigit,
			},
			{
				Name:      "verify",
				Usage:     "Verify the trailing check digit of an identifier",
				ArgsUsage: "<identifier>",
				Action:    runVerify,
			},
			{
				Name:      "complete",
				Usage:     "Append the check digit to an 11-character prefix",
				ArgsUsage: "<prefix>",
				Action:    runComplete,
			},
		},
	}
}

// codecFor builds the codec selected by the --case flag.
func codecFor(c *cli.Context) (*isin.Codec, error) {
	return isin.Use(isin.CasePolicy(c.String("case")))
}

// singleArg enforces exactly one positional argument.
func singleArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s argument", name)
	}
	return c.Args().First(), nil
}

func runEncode(c *cli.Context) error {
	id, err := singleArg(c, "identifier")
	if err != nil {
		return err
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	value, err := codec.Encode(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, value)
	return nil
}

func runDecode(c *cli.Context) error {
	arg, err := singleArg(c, "value")
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", arg, err)
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	id, err := codec.Decode(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, id)
	return nil
}

func runValidate(c *cli.Context) error {
	id, err := singleArg(c, "identifier")
	if err != nil {
		return err
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	if !codec.IsValid(id) {
		fmt.Fprintln(c.App.Writer, "invalid")
		return cli.Exit("", 1)
	}
	fmt.Fprintln(c.App.Writer, "valid")
	return nil
}

func runCheckDigit(c *cli.Context) error {
	prefix, err := singleArg(c, "prefix")
	if err != nil {
		return err
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	digit, err := codec.CheckDigit(prefix)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, digit)
	return nil
}

func runVerify(c *cli.Context) error {
	id, err := singleArg(c, "identifier")
	if err != nil {
		return err
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	if !codec.Verify(id) {
		fmt.Fprintln(c.App.Writer, "mismatch")
		return cli.Exit("", 1)
	}
	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}

func runComplete(c *cli.Context) error {
	prefix, err := singleArg(c, "prefix")
	if err != nil {
		return err
	}
	codec, err := codecFor(c)
	if err != nil {
		return err
	}
	id, err := codec.WithCheckDigit(prefix)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, id)
	return nil
}
