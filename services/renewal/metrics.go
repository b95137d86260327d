package renewal

import (
	"fmt"
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const etherDecimals = 18

var (
	invocationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ens_renewal_invocations_total",
			Help: "Renewal invocations by outcome",
		},
		[]string{"variant", "status"},
	)
	renewedNamesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ens_renewal_names_total",
			Help: "Names renewed",
		},
		[]string{"variant"},
	)
	spentEther = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ens_renewal_spent_eth_total",
			Help: "Ether forwarded to the upstream controller",
		},
		[]string{"variant"},
	)
	refundedEther = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ens_renewal_refunded_eth_total",
			Help: "Ether returned to callers",
		},
		[]string{"variant"},
	)
	batchSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ens_renewal_batch_size",
			Help:    "Names per renewal invocation",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(invocationCounter)
	prometheus.MustRegister(renewedNamesCounter)
	prometheus.MustRegister(spentEther)
	prometheus.MustRegister(refundedEther)
	prometheus.MustRegister(batchSize)
}

// WeiToEther converts a wei amount to ether.
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -etherDecimals)
}

// EtherToWei parses an ether amount such as "0.01" into wei. Amounts finer
// than one wei are rejected.
func EtherToWei(ether string) (*big.Int, error) {
	d, err := decimal.NewFromString(ether)
	if err != nil {
		return nil, err
	}
	wei := d.Shift(etherDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%s ether is not a whole number of wei", ether)
	}
	return wei.BigInt(), nil
}

func observeSuccess(receipt *Receipt) {
	variant := string(receipt.Variant)
	invocationCounter.WithLabelValues(variant, "success").Inc()
	renewedNamesCounter.WithLabelValues(variant).Add(float64(len(receipt.Labels)))
	batchSize.WithLabelValues(variant).Observe(float64(len(receipt.Labels)))

	spent, _ := WeiToEther(receipt.Spent).Float64()
	spentEther.WithLabelValues(variant).Add(spent)
	refunded, _ := WeiToEther(receipt.Refunded).Float64()
	refundedEther.WithLabelValues(variant).Add(refunded)
}

func observeFailure(variant Variant) {
	invocationCounter.WithLabelValues(string(variant), "failure").Inc()
}
