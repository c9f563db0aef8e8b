package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/ojohpeters/ecocoin-back/contract"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
	"github.com/ojohpeters/ecocoin-back/service/svc"
)

// StartFeeMonitor watches token Transfer events into the treasury and
// records qualifying claim-fee payments. Runs until the process exits,
// reconnecting with a jittered delay when the subscription drops.
func StartFeeMonitor(svcCtx *svc.ServerCtx) {
	cfg := svcCtx.C.AirdropContract
	if cfg.WsEndpoint == "" {
		xzap.WithContext(context.Background()).Info("fee monitor disabled: no ws endpoint configured")
		return
	}

	tokenAddress := common.HexToAddress(cfg.TokenAddress)
	treasury := common.HexToAddress(cfg.TreasuryAddress)

	for {
		err := watchFeeTransfers(svcCtx, tokenAddress, treasury)
		xzap.WithContext(context.Background()).Error("fee monitor stopped, reconnecting",
			zap.Error(err))
		time.Sleep(5*time.Second + time.Duration(rand.Intn(5000))*time.Millisecond)
	}
}

func watchFeeTransfers(svcCtx *svc.ServerCtx, tokenAddress, treasury common.Address) error {
	client, err := ethclient.Dial(svcCtx.C.AirdropContract.WsEndpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	query := ethereum.FilterQuery{
		Addresses: []common.Address{tokenAddress},
		Topics: [][]common.Hash{
			{contract.TransferTopic},
			nil,
			{common.BytesToHash(common.LeftPadBytes(treasury.Bytes(), 32))},
		},
	}

	logs := make(chan gethtypes.Log)
	sub, err := client.SubscribeFilterLogs(context.Background(), query, logs)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	xzap.WithContext(context.Background()).Info("fee monitor started",
		zap.String("token", tokenAddress.Hex()),
		zap.String("treasury", treasury.Hex()))

	for {
		select {
		case err := <-sub.Err():
			return err
		case vLog := <-logs:
			handleFeeTransfer(svcCtx, vLog)
		}
	}
}

func handleFeeTransfer(svcCtx *svc.ServerCtx, vLog gethtypes.Log) {
	// Transfer(from indexed, to indexed, value)
	if len(vLog.Topics) < 3 || len(vLog.Data) < 32 {
		return
	}
	from := common.BytesToAddress(vLog.Topics[1].Bytes())
	value := new(big.Int).SetBytes(vLog.Data[0:32])

	required := big.NewInt(svcCtx.C.AirdropContract.ClaimFeeAmount)
	if value.Cmp(required) < 0 {
		return
	}

	ctx := context.Background()
	recorded, err := svcCtx.Dao.RecordFeeIfNew(ctx, from.Hex(), vLog.TxHash.Hex())
	if err != nil {
		xzap.WithContext(ctx).Error("failed to record fee payment",
			zap.String("wallet", from.Hex()),
			zap.String("tx_hash", vLog.TxHash.Hex()),
			zap.Error(err))
		return
	}
	if recorded {
		xzap.WithContext(ctx).Info("fee payment recorded",
			zap.String("wallet", from.Hex()),
			zap.String("amount", value.String()),
			zap.String("tx_hash", vLog.TxHash.Hex()),
			zap.Uint64("block", vLog.BlockNumber))
	}
}
