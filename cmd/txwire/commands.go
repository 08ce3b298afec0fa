package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/txwire/errors"
	"github.com/bsv-blockchain/txwire/model"
	"github.com/bsv-blockchain/txwire/services/codec"
	"github.com/bsv-blockchain/txwire/settings"
	"github.com/bsv-blockchain/txwire/ulogger"
	"github.com/bsv-blockchain/txwire/util/bytesize"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type runner struct {
	logger   ulogger.Logger
	settings *settings.Settings
	in       io.Reader
	out      io.Writer
}

type decodeResult struct {
	Transaction *model.BitcoinTransaction `json:"transaction"`
	Consumed    int                       `json:"consumed"`
	Trailing    int                       `json:"trailing"`
}

func (r *runner) decode(c *cli.Context) error {
	hexes, err := r.readHexArgs(c)
	if err != nil {
		return err
	}

	if len(hexes) == 0 {
		return errors.NewInvalidArgumentError("no transactions to decode")
	}

	raws := make([][]byte, len(hexes))

	for i, h := range hexes {
		if raws[i], err = hex.DecodeString(h); err != nil {
			return errors.NewInvalidFormatError("transaction %d is not valid hex", i, err)
		}
	}

	allowTrailing := c.Bool("trailing")

	txCodec, err := codec.New(r.logger, r.settings, codec.WithAllowTrailingBytes(allowTrailing))
	if err != nil {
		return err
	}

	results := make([]decodeResult, len(raws))

	if allowTrailing {
		// consumed counts are only known per transaction
		for i, raw := range raws {
			tx, n, err := txCodec.Decode(raw)
			if err != nil {
				return errors.NewProcessingError("transaction %d", i, err)
			}

			results[i] = decodeResult{Transaction: tx, Consumed: n, Trailing: len(raw) - n}
		}
	} else {
		txs, err := txCodec.DecodeBatch(c.Context, raws)
		if err != nil {
			return err
		}

		for i, tx := range txs {
			results[i] = decodeResult{Transaction: tx, Consumed: len(raws[i])}
		}
	}

	r.logger.Debugf("[decode] decoded %d transactions", len(results))

	if c.Bool("json") {
		return r.printJSON(results)
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}

		fmt.Fprintln(r.out, result.Transaction.String())
		fmt.Fprintf(r.out, "  Consumed: %d bytes (%s)\n", result.Consumed, bytesize.ByteSize(result.Consumed))

		if result.Trailing > 0 {
			fmt.Fprintf(r.out, "  Trailing: %d bytes\n", result.Trailing)
		}
	}

	return nil
}

func (r *runner) encode(c *cli.Context) error {
	data, err := r.readInput(c.String("file"))
	if err != nil {
		return err
	}

	var tx model.BitcoinTransaction
	if err = json.Unmarshal(data, &tx); err != nil {
		return errors.NewInvalidFormatError("invalid transaction JSON", err)
	}

	txCodec, err := codec.New(r.logger, r.settings)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, txCodec.EncodeHex(&tx))

	return nil
}

func (r *runner) compactSize(c *cli.Context) error {
	if s := c.String("decode"); s != "" {
		b, err := hex.DecodeString(s)
		if err != nil {
			return errors.NewInvalidFormatError("compact size is not valid hex", err)
		}

		cs, n, err := model.NewCompactSizeFromBytes(b)
		if err != nil {
			return err
		}

		fmt.Fprintf(r.out, "value: %d\nconsumed: %d\n", cs.Value, n)

		if n != cs.Size() {
			fmt.Fprintf(r.out, "non-canonical, canonical encoding is %x\n", cs.Bytes())
		}

		return nil
	}

	if c.NArg() != 1 {
		return errors.NewInvalidArgumentError("compactsize takes exactly one value")
	}

	value, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return errors.NewInvalidArgumentError("invalid compact size value %q", c.Args().First(), err)
	}

	fmt.Fprintf(r.out, "%x\n", model.NewCompactSize(value).Bytes())

	return nil
}

func (r *runner) txid(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.NewInvalidArgumentError("txid takes exactly one hex value")
	}

	txid, err := model.NewTxidFromString(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s\nreversed: %s\n", txid.String(), txid.ReverseString())

	return nil
}

// readHexArgs collects whitespace separated hex strings from --file, the arguments, or stdin for "-".
func (r *runner) readHexArgs(c *cli.Context) ([]string, error) {
	if file := c.String("file"); file != "" {
		data, err := r.readInput(file)
		if err != nil {
			return nil, err
		}

		return strings.Fields(string(data)), nil
	}

	var hexes []string

	for _, arg := range c.Args().Slice() {
		if arg != "-" {
			hexes = append(hexes, arg)
			continue
		}

		data, err := r.readInput(arg)
		if err != nil {
			return nil, err
		}

		hexes = append(hexes, strings.Fields(string(data))...)
	}

	return hexes, nil
}

func (r *runner) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(r.in)
		if err != nil {
			return nil, errors.NewProcessingError("failed to read stdin", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.NewProcessingError("failed to read %s", name, err)
	}

	return data, nil
}

func (r *runner) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.NewProcessingError("failed to marshal JSON", err)
	}

	fmt.Fprintln(r.out, string(data))

	return nil
}
