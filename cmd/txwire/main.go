// Package main is the txwire command line tool. It decodes and encodes raw transactions,
// CompactSize values and transaction ids.
//
// Usage:
//
//	txwire decode [--json] [--trailing] <hex>...
//	txwire decode --file txs.hex
//	txwire encode --file tx.json
//	txwire compactsize 300
//	txwire compactsize --decode fd2c01
//	txwire txid <hex>
//
// A "-" argument or file name reads from stdin.
package main

import (
	"io"
	"os"

	"github.com/bsv-blockchain/txwire/settings"
	"github.com/bsv-blockchain/txwire/ulogger"
	"github.com/urfave/cli/v2"
)

const (
	appName    = "txwire"
	appVersion = "1.0.0"
)

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New(appName,
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithLoggerType(tSettings.LoggerType),
		ulogger.WithWriter(os.Stderr),
	)

	app := newApp(logger, tSettings, os.Stdin, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp(logger ulogger.Logger, tSettings *settings.Settings, in io.Reader, out io.Writer) *cli.App {
	r := &runner{
		logger:   logger,
		settings: tSettings,
		in:       in,
		out:      out,
	}

	return &cli.App{
		Name:      appName,
		Version:   appVersion,
		Usage:     "Decode and encode raw bitcoin transactions",
		Reader:    in,
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode hex encoded transactions",
				ArgsUsage: "<hex>... | -",
				Action:    r.decode,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print transactions as JSON",
					},
					&cli.BoolFlag{
						Name:  "trailing",
						Usage: "accept bytes after the transaction and report them",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "read hex transactions from a file, one per line",
					},
				},
			},
			{
				Name:   "encode",
				Usage:  "Encode a JSON transaction to hex",
				Action: r.encode,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "JSON file to read, - for stdin",
						Value: "-",
					},
				},
			},
			{
				Name:      "compactsize",
				Usage:     "Encode a CompactSize value, or decode one with --decode",
				ArgsUsage: "<value>",
				Action:    r.compactSize,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "decode",
						Usage: "hex encoded CompactSize to decode",
					},
				},
			},
			{
				Name:      "txid",
				Usage:     "Validate and normalize a transaction id",
				ArgsUsage: "<hex>",
				Action:    r.txid,
			},
		},
	}
}
