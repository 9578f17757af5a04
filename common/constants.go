package common

// Config keys
const (
	LogLevel = "log.level"

	StateBackend   = "state.backend"
	StateCacheSize = "state.cache_size"

	TxPoolMaxSize = "txpool.max_size"
	MaxBlockTxs   = "chain.max_block_txs"

	EngineName    = "consensus.engine"
	BlockInterval = "consensus.block_interval"
	SealEmpty     = "consensus.seal_empty"
	Miner         = "consensus.miner"

	RPCAddr = "rpc.addr"

	GenesisAlloc = "genesis.alloc"
)

// State backends
const (
	MemoryBackend  = "memory"
	LevelDBBackend = "leveldb"
	BadgerBackend  = "badger"
)

// Consensus engines
const (
	SoloEngine = "solo"
)
