// Package codec wraps the wire decoder with the caller-side policy the wire format leaves open:
// script and input count caps, trailing byte handling, batch and stream decoding, and metrics.
package codec

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/bsv-blockchain/txwire/errors"
	"github.com/bsv-blockchain/txwire/model"
	"github.com/bsv-blockchain/txwire/settings"
	"github.com/bsv-blockchain/txwire/ulogger"
	"github.com/bsv-blockchain/txwire/util"
	"golang.org/x/sync/errgroup"
)

type Codec struct {
	logger   ulogger.Logger
	settings *settings.Settings
	options  *Options
}

func New(logger ulogger.Logger, tSettings *settings.Settings, opts ...Option) (*Codec, error) {
	if err := tSettings.Validate(); err != nil {
		return nil, err
	}

	options := ProcessOptions(tSettings, opts...)

	if options.maxScriptSize < 0 || options.maxInputCount < 0 {
		return nil, errors.NewInvalidArgumentError("codec limits must not be negative")
	}

	if options.metricsEnabled {
		initPrometheusMetrics()
	}

	logger.Debugf("[Codec] max script size %d, max input count %d, trailing bytes allowed %t, batch concurrency %d",
		options.maxScriptSize, options.maxInputCount, options.allowTrailingBytes, options.batchConcurrency)

	return &Codec{
		logger:   logger,
		settings: tSettings,
		options:  options,
	}, nil
}

// Decode parses a transaction from the front of b and applies the configured policy.
func (c *Codec) Decode(b []byte) (*model.BitcoinTransaction, int, error) {
	start := time.Now()

	tx, n, err := model.NewBitcoinTransactionFromBytes(b)
	if err == nil {
		err = c.checkPolicy(tx, n, len(b), c.options.allowTrailingBytes)
	}

	if err != nil {
		c.recordError(err)
		c.logger.Debugf("[Codec] failed to decode %d bytes: %v", len(b), err)

		return nil, 0, err
	}

	c.recordDecode(tx, n, start)

	return tx, n, nil
}

func (c *Codec) DecodeHex(s string) (*model.BitcoinTransaction, int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		err = errors.NewInvalidFormatError("transaction is not valid hex", err)
		c.recordError(err)

		return nil, 0, err
	}

	return c.Decode(b)
}

func (c *Codec) Encode(tx *model.BitcoinTransaction) []byte {
	if c.options.metricsEnabled {
		prometheusEncodedTransactions.Inc()
	}

	return tx.Bytes()
}

func (c *Codec) EncodeHex(tx *model.BitcoinTransaction) string {
	return hex.EncodeToString(c.Encode(tx))
}

// DecodeStream decodes back to back transactions until b is exhausted.
// A partial transaction at the end of b is reported as insufficient bytes, wrapped with its offset.
func (c *Codec) DecodeStream(b []byte) ([]*model.BitcoinTransaction, error) {
	var (
		txs    []*model.BitcoinTransaction
		offset int
	)

	for offset < len(b) {
		start := time.Now()

		tx, n, err := model.NewBitcoinTransactionFromBytes(b[offset:])
		if err == nil {
			err = c.checkPolicy(tx, n, len(b)-offset, true)
		}

		if err != nil {
			c.recordError(err)
			return nil, errors.NewProcessingError("[DecodeStream] transaction %d at offset %d", len(txs), offset, err)
		}

		c.recordDecode(tx, n, start)

		txs = append(txs, tx)
		offset += n
	}

	c.logger.Debugf("[Codec] decoded %d transactions from %d bytes", len(txs), len(b))

	return txs, nil
}

// DecodeBatch decodes every buffer in items concurrently. Results keep the order of items.
// The first failure cancels the remaining work and is returned.
func (c *Codec) DecodeBatch(ctx context.Context, items [][]byte) ([]*model.BitcoinTransaction, error) {
	txs := make([]*model.BitcoinTransaction, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	util.SafeSetLimit(g, c.options.batchConcurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return errors.NewContextCanceledError("[DecodeBatch] transaction %d not decoded", i, err)
			}

			tx, _, err := c.Decode(item)
			if err != nil {
				return errors.NewProcessingError("[DecodeBatch] transaction %d", i, err)
			}

			txs[i] = tx

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return txs, nil
}

func (c *Codec) checkPolicy(tx *model.BitcoinTransaction, consumed int, available int, allowTrailingBytes bool) error {
	if c.options.maxInputCount > 0 && len(tx.Inputs) > c.options.maxInputCount {
		return errors.NewInvalidFormatError("transaction has %d inputs, maximum is %d", len(tx.Inputs), c.options.maxInputCount)
	}

	if c.options.maxScriptSize > 0 {
		for i, input := range tx.Inputs {
			if input.ScriptSig.Len() > c.options.maxScriptSize {
				return errors.NewInvalidFormatError("input %d script_sig is %d bytes, maximum is %d", i, input.ScriptSig.Len(), c.options.maxScriptSize)
			}
		}
	}

	if !allowTrailingBytes && consumed != available {
		return errors.NewInvalidFormatError("%d trailing bytes after transaction", available-consumed)
	}

	return nil
}

func (c *Codec) recordDecode(tx *model.BitcoinTransaction, size int, start time.Time) {
	if !c.options.metricsEnabled {
		return
	}

	prometheusDecodedTransactions.Inc()
	prometheusTransactionSize.Observe(float64(size))
	prometheusTransactionInputs.Observe(float64(len(tx.Inputs)))
	prometheusDecodeDuration.Observe(time.Since(start).Seconds())
}

func (c *Codec) recordError(err error) {
	if !c.options.metricsEnabled {
		return
	}

	prometheusDecodeErrors.WithLabelValues(errors.Kind(err)).Inc()
}
