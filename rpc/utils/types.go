package utils

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bajpai244/fastpay/common"
)

type Block struct {
	Number        hexutil.Uint64 `json:"number"`
	Hash          common.Hash    `json:"hash"`
	ParentHash    common.Hash    `json:"parentHash"`
	Nonce         hexutil.Bytes  `json:"nonce"`
	Timestamp     hexutil.Uint64 `json:"timestamp"`
	Miner         common.Address `json:"miner"`
	StateRoot     common.Hash    `json:"stateRoot"`
	ReceiptsRoot  common.Hash    `json:"receiptsRoot"`
	LogsBloom     hexutil.Bytes  `json:"logsBloom"`
	GasUsed       *hexutil.Big   `json:"gasUsed"`
	GasLimit      *hexutil.Big   `json:"gasLimit"`
	BaseFeePerGas *hexutil.Big   `json:"baseFeePerGas"`
	// Transactions holds tx hashes, or full Transaction objects when requested
	Transactions []interface{} `json:"transactions"`
}

type Transaction struct {
	Hash             common.Hash     `json:"hash"`
	From             common.Address  `json:"from"`
	To               common.Address  `json:"to"`
	Value            hexutil.Uint64  `json:"value"`
	Signature        hexutil.Bytes   `json:"signature"`
	BlockHash        *common.Hash    `json:"blockHash"`
	BlockNumber      *hexutil.Uint64 `json:"blockNumber"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex"`
}
