package common

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// UnifyAddress validates a wallet address and normalizes it to its EIP-55
// checksum form. All wallet addresses are stored in this form.
func UnifyAddress(address string) (string, error) {
	if len(address) <= 2 || !common.IsHexAddress(address) {
		return "", errors.New("user address is illegal")
	}
	return common.HexToAddress(address).Hex(), nil
}
