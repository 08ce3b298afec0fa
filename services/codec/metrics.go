package codec

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusDecodedTransactions prometheus.Counter
	prometheusEncodedTransactions prometheus.Counter
	prometheusDecodeErrors        *prometheus.CounterVec
	prometheusTransactionSize     prometheus.Histogram
	prometheusTransactionInputs   prometheus.Histogram
	prometheusDecodeDuration      prometheus.Histogram
)

var (
	// metricsBucketsMicroSeconds range from 1μs to 2ms
	metricsBucketsMicroSeconds = []float64{
		1e-6, 2e-6, 4e-6, 8e-6, 16e-6, 32e-6, 64e-6, 128e-6, 256e-6, 512e-6, 1024e-6, 2048e-6,
	}

	// metricsBucketsSize range from 64 bytes to 128KB
	metricsBucketsSize = []float64{
		64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072,
	}

	metricsBucketsCount = []float64{
		0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024,
	}
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusDecodedTransactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "decoded_transactions",
			Help:      "Number of transactions decoded successfully",
		},
	)

	prometheusEncodedTransactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "encoded_transactions",
			Help:      "Number of transactions encoded",
		},
	)

	prometheusDecodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "decode_errors",
			Help:      "Number of failed decodes by error kind",
		},
		[]string{"kind"},
	)

	prometheusTransactionSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "transaction_size",
			Help:      "Size in bytes of decoded transactions",
			Buckets:   metricsBucketsSize,
		},
	)

	prometheusTransactionInputs = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "transaction_inputs",
			Help:      "Number of inputs of decoded transactions",
			Buckets:   metricsBucketsCount,
		},
	)

	prometheusDecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "txwire",
			Subsystem: "codec",
			Name:      "decode_duration",
			Help:      "Histogram of transaction decode time in seconds",
			Buckets:   metricsBucketsMicroSeconds,
		},
	)
}
