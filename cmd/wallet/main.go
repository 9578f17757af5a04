package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/account"
	"github.com/bajpai244/fastpay/common"
)

const usage = `usage:
  wallet new
  wallet transfer -key <hex> -to <address> -amount <n>`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = newKey()
	case "transfer":
		err = transfer(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newKey() error {
	key, err := account.NewKey()
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\n", key.Address().Hex())
	fmt.Printf("key:     %s\n", key.Hex())
	return nil
}

// transfer prints a signed raw transaction ready for eth_sendRawTransaction.
func transfer(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	keyHex := fs.String("key", "", "hex encoded private key of the sender")
	to := fs.String("to", "", "recipient address")
	amount := fs.Uint64("amount", 0, "amount to transfer")
	fs.Parse(args)

	raw, err := signTransfer(*keyHex, *to, *amount)
	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(raw))
	return nil
}

func signTransfer(keyHex, to string, amount uint64) ([]byte, error) {
	key, err := account.HexToKey(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "load key")
	}
	if !common.IsHexAddress(to) {
		return nil, errors.Errorf("invalid recipient address %q", to)
	}
	tx, err := key.Transfer(common.HexToAddress(to), amount)
	if err != nil {
		return nil, err
	}
	return tx.EncodeRaw()
}
