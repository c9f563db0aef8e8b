package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	acommon "github.com/anyswap/CrossChain-Bridge/common"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ojohpeters/ecocoin-back/config"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
)

// EcoTokenContract wraps the EcoCoin ERC-20 contract used for airdrop
// distribution and claim-fee detection.
type EcoTokenContract struct {
	client      *ethclient.Client
	config      *config.Config
	contractABI abi.ABI
	address     common.Address
	treasury    common.Address
}

// ERC-20 subset: transfer for airdrop sends, balanceOf for treasury checks.
const erc20ABI = `[
    {
        "inputs": [
            {"internalType": "address", "name": "to", "type": "address"},
            {"internalType": "uint256", "name": "amount", "type": "uint256"}
        ],
        "name": "transfer",
        "outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
        "stateMutability": "nonpayable",
        "type": "function"
    },
    {
        "inputs": [{"internalType": "address", "name": "account", "type": "address"}],
        "name": "balanceOf",
        "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
        "stateMutability": "view",
        "type": "function"
    }
]`

// TransferTopic is the Transfer(address,address,uint256) event signature hash.
var TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

func NewEcoTokenContract(cfg *config.Config) (*EcoTokenContract, error) {
	var client *ethclient.Client
	var err error

	for i := 0; i < 3; i++ {
		client, err = connectWithTimeout(cfg.AirdropContract.RPCEndpoint, 30*time.Second)
		if err == nil {
			break
		}
		xzap.WithContext(context.Background()).Warn("failed to connect to chain node",
			zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node after 3 attempts: %v", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ABI: %v", err)
	}

	if !common.IsHexAddress(cfg.AirdropContract.TokenAddress) {
		return nil, fmt.Errorf("invalid token address: %s", cfg.AirdropContract.TokenAddress)
	}
	if !common.IsHexAddress(cfg.AirdropContract.TreasuryAddress) {
		return nil, fmt.Errorf("invalid treasury address: %s", cfg.AirdropContract.TreasuryAddress)
	}

	return &EcoTokenContract{
		client:      client,
		config:      cfg,
		contractABI: parsedABI,
		address:     common.HexToAddress(cfg.AirdropContract.TokenAddress),
		treasury:    common.HexToAddress(cfg.AirdropContract.TreasuryAddress),
	}, nil
}

func connectWithTimeout(endpoint string, timeout time.Duration) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain node: %v", err)
	}
	return client, nil
}

// TokensToRawAmount converts whole tokens to on-chain units.
func TokensToRawAmount(tokens int64, decimals int32) *big.Int {
	return decimal.NewFromInt(tokens).Shift(decimals).BigInt()
}

// TreasuryBalance returns the treasury's raw token balance.
func (c *EcoTokenContract) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	treasury := acommon.HexToAddress(c.config.AirdropContract.TreasuryAddress)
	data, err := c.contractABI.Pack("balanceOf", common.Address(treasury))
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf call: %v", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %v", err)
	}

	var balance *big.Int
	if err := c.contractABI.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf result: %v", err)
	}
	return balance, nil
}

// SendTokens transfers the given whole-token amount to the wallet and waits
// for the transaction to be mined. Returns the transaction hash.
func (c *EcoTokenContract) SendTokens(ctx context.Context, toWallet string, tokens int64) (string, error) {
	if !common.IsHexAddress(toWallet) {
		return "", fmt.Errorf("invalid recipient wallet: %s", toWallet)
	}
	to := common.HexToAddress(toWallet)
	amount := TokensToRawAmount(tokens, c.config.AirdropContract.TokenDecimals)

	balance, err := c.TreasuryBalance(ctx)
	if err != nil {
		return "", err
	}
	if balance.Cmp(amount) < 0 {
		return "", fmt.Errorf("insufficient treasury balance: need %s, have %s",
			amount.String(), balance.String())
	}

	privateKey, err := crypto.HexToECDSA(c.config.AirdropContract.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %v", err)
	}
	from := crypto.PubkeyToAddress(privateKey.PublicKey)

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	nonce, err := c.client.PendingNonceAt(callCtx, from)
	cancel()
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %v", err)
	}

	gasPrice := big.NewInt(c.config.AirdropContract.GasPrice)
	if gasPrice.Sign() == 0 {
		callCtx, cancel = context.WithTimeout(ctx, 30*time.Second)
		gasPrice, err = c.client.SuggestGasPrice(callCtx)
		cancel()
		if err != nil {
			return "", fmt.Errorf("failed to suggest gas price: %v", err)
		}
	}

	data, err := c.contractABI.Pack("transfer", to, amount)
	if err != nil {
		return "", fmt.Errorf("failed to pack transaction data: %v", err)
	}

	callCtx, cancel = context.WithTimeout(ctx, 30*time.Second)
	gasLimit, err := c.client.EstimateGas(callCtx, ethereum.CallMsg{
		From:  from,
		To:    &c.address,
		Data:  data,
		Value: big.NewInt(0),
	})
	cancel()
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %v", err)
	}

	tx := types.NewTransaction(nonce, c.address, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(c.config.AirdropContract.ChainID)), privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %v", err)
	}

	callCtx, cancel = context.WithTimeout(ctx, 30*time.Second)
	err = c.client.SendTransaction(callCtx, signedTx)
	cancel()
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %v", err)
	}

	callCtx, cancel = context.WithTimeout(ctx, 120*time.Second)
	receipt, err := bind.WaitMined(callCtx, c.client, signedTx)
	cancel()
	if err != nil {
		return "", fmt.Errorf("failed to wait for transaction: %v", err)
	}
	if receipt.Status == 0 {
		return "", fmt.Errorf("transfer transaction reverted: %s", signedTx.Hash().Hex())
	}

	xzap.WithContext(ctx).Info("tokens sent",
		zap.String("to", to.Hex()),
		zap.Int64("tokens", tokens),
		zap.String("tx_hash", signedTx.Hash().Hex()))

	return signedTx.Hash().Hex(), nil
}

// CheckFeePaid scans recent Transfer logs for a claim-fee payment from the
// wallet into the treasury. Returns the matching transaction hash when found.
func (c *EcoTokenContract) CheckFeePaid(ctx context.Context, wallet string) (bool, string, error) {
	if !common.IsHexAddress(wallet) {
		return false, "", fmt.Errorf("invalid user wallet: %s", wallet)
	}
	from := common.HexToAddress(wallet)

	head, err := c.client.BlockNumber(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to get block number: %v", err)
	}
	scan := c.config.AirdropContract.FeeScanBlocks
	var fromBlock uint64
	if head > scan {
		fromBlock = head - scan
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{c.address},
		Topics: [][]common.Hash{
			{TransferTopic},
			{common.BytesToHash(common.LeftPadBytes(from.Bytes(), 32))},
			{common.BytesToHash(common.LeftPadBytes(c.treasury.Bytes(), 32))},
		},
	}

	logs, err := c.client.FilterLogs(ctx, query)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch transfer logs: %v", err)
	}

	required := big.NewInt(c.config.AirdropContract.ClaimFeeAmount)
	for _, vLog := range logs {
		if len(vLog.Data) < 32 {
			continue
		}
		value := new(big.Int).SetBytes(vLog.Data[0:32])
		if value.Cmp(required) >= 0 {
			return true, vLog.TxHash.Hex(), nil
		}
	}
	return false, "", nil
}

func (c *EcoTokenContract) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
