package executor

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/state"
)

var errInvalidAlloc = errors.New("invalid genesis allocation")

// Genesis pre-seeds accounts before the node accepts transactions.
type Genesis struct {
	Alloc map[common.Address]uint64
}

// GenesisFromConfig reads the genesis.alloc map of address => balance.
// Balances may be decimal or 0x-prefixed hex.
func GenesisFromConfig(config *common.Config) (*Genesis, error) {
	genesis := &Genesis{Alloc: make(map[common.Address]uint64)}
	for addr, bal := range config.GetStringMapString(common.GenesisAlloc) {
		if !common.IsHexAddress(addr) {
			return nil, errors.Wrapf(errInvalidAlloc, "address %q", addr)
		}
		balance, err := strconv.ParseUint(bal, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(errInvalidAlloc, "balance %q of %s", bal, addr)
		}
		genesis.Alloc[common.HexToAddress(addr)] = balance
	}
	return genesis, nil
}

// ApplyGenesis writes every allocation in one atomic commit.
func (g *Genesis) ApplyGenesis(store state.Store) error {
	addrs := make([]common.Address, 0, len(g.Alloc))
	for addr := range g.Alloc {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})

	writes := make([]state.Write, 0, len(addrs))
	for _, addr := range addrs {
		writes = append(writes, state.Write{Address: addr, Account: state.NewAccount(addr, g.Alloc[addr])})
	}
	if err := state.ApplyWrites(store, writes); err != nil {
		log.Errorf("failed to apply genesis allocation, err:%s", err)
		return err
	}
	log.Infof("genesis allocated %d accounts", len(writes))
	return nil
}
