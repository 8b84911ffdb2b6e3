// Command-line converter for minikey and hbits private keys.
// Usage: go run ./cmd/minikey convert S6c56bnXQiBjk9mqSYE7ykVQ7NzrRy
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "minikey",
		Usage:  "Convert minikey and hbits private keys to Wallet Import Format",
		Before: initConfig,
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "print the WIF for each key (prompts when no key is given)",
				ArgsUsage: "[KEY...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "qr",
						Usage: "write a PNG QR code of the last valid WIF to `FILE`",
					},
				},
				Action: ConvertAction,
			},
			{
				Name:      "export",
				Usage:     "convert a key and store the WIF in a password-encrypted .cwt file",
				ArgsUsage: "[KEY]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Usage:    "key file `PATH` (.cwt)",
						Required: true,
					},
				},
				Action: ExportAction,
			},
			{
				Name:  "import",
				Usage: "decrypt a .cwt key file and print its WIF",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Usage:    "key file `PATH` (.cwt)",
						Required: true,
					},
				},
				Action: ImportAction,
			},
			{
				Name:      "decode-wif",
				Usage:     "print the secret and compression flag of a WIF",
				ArgsUsage: "WIF",
				Action:    DecodeWIFAction,
			},
		},
	}
}
