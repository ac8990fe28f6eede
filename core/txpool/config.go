package txpool

import (
	"github.com/holiman/uint256"

	"github.com/fuellabs/fuel-txpool-go/log"
)

// Config are the configuration parameters of the transaction pool.
type Config struct {
	// MaxTxs is the hard cap on simultaneously pooled entries.
	MaxTxs int
	// MaxDepth is the hard cap on in-pool dependency depth, counted from
	// 1 at a root (no in-pool parents) entry.
	MaxDepth int
	// MinGasPrice is the inclusive lower bound for admission: a gas price
	// equal to it is accepted, anything below is rejected.
	MinGasPrice *uint256.Int
}

// DefaultConfig contains the default configuration for the transaction
// pool.
var DefaultConfig = Config{
	MaxTxs:      4096,
	MaxDepth:    32,
	MinGasPrice: uint256.NewInt(0),
}

// sanitize checks the provided user configuration and corrects anything
// unreasonable or unworkable, the way geth's txpool Config.sanitize does.
func (config Config) sanitize() Config {
	conf := config
	if conf.MaxTxs < 1 {
		log.Warn("Sanitizing invalid txpool max txs", "provided", conf.MaxTxs, "updated", DefaultConfig.MaxTxs)
		conf.MaxTxs = DefaultConfig.MaxTxs
	}
	if conf.MaxDepth < 1 {
		log.Warn("Sanitizing invalid txpool max depth", "provided", conf.MaxDepth, "updated", DefaultConfig.MaxDepth)
		conf.MaxDepth = DefaultConfig.MaxDepth
	}
	if conf.MinGasPrice == nil {
		conf.MinGasPrice = uint256.NewInt(0)
	}
	return conf
}
