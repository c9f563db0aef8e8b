package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ojohpeters/ecocoin-back/common"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
	"github.com/ojohpeters/ecocoin-back/service/svc"
	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
)

// ClaimAirdrop pays out a wallet's accumulated points as tokens. The wallet
// must hold at least the minimum points and have paid the claim fee into the
// treasury; the fee payment is consumed by the claim.
func ClaimAirdrop(ctx context.Context, s *svc.ServerCtx, wallet string) (*types.ClaimResp, error) {
	wallet, err := common.UnifyAddress(wallet)
	if err != nil {
		return nil, err
	}

	user, err := s.Dao.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("wallet is not registered")
		}
		return nil, errors.Wrap(err, "failed on get user")
	}

	if user.HasClaimed {
		return nil, errors.New("airdrop already claimed")
	}
	if user.TotalPoints < s.C.Points.MinClaimPoints {
		return nil, fmt.Errorf("not enough points (min %d)", s.C.Points.MinClaimPoints)
	}

	feeSig, err := findFeePayment(ctx, s, wallet)
	if err != nil {
		return nil, err
	}

	tokens := int64(user.TotalPoints)
	txHash, err := s.TokenClient.SendTokens(ctx, wallet, tokens)
	if err != nil {
		return nil, errors.Wrap(err, "failed on send tokens")
	}

	entry := &points.AirdropLog{
		WalletAddress: wallet,
		AmountSent:    tokens,
		TxSignature:   &txHash,
	}
	if err := s.Dao.CreateAirdropLog(ctx, entry); err != nil {
		xzap.WithContext(ctx).Error("airdrop sent but not logged",
			zap.String("wallet", wallet), zap.String("tx_hash", txHash), zap.Error(err))
		return nil, errors.Wrap(err, "failed on log airdrop")
	}
	if err := s.Dao.SetClaimed(ctx, wallet); err != nil {
		return nil, errors.Wrap(err, "failed on mark claimed")
	}
	if err := s.Dao.MarkFeeUsed(ctx, wallet, feeSig); err != nil {
		return nil, errors.Wrap(err, "failed on consume fee payment")
	}

	xzap.WithContext(ctx).Info("airdrop sent",
		zap.String("wallet", wallet),
		zap.Int64("tokens", tokens),
		zap.String("tx_hash", txHash))

	return &types.ClaimResp{
		Status: "airdrop sent",
		Tokens: tokens,
		TxHash: txHash,
	}, nil
}

// findFeePayment returns the tx signature of an available fee payment:
// first a recorded unused row, otherwise an on-demand chain scan whose
// result is recorded for later consumption.
func findFeePayment(ctx context.Context, s *svc.ServerCtx, wallet string) (string, error) {
	fee, err := s.Dao.GetUnusedFeePayment(ctx, wallet)
	if err == nil {
		return fee.TxSignature, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.Wrap(err, "failed on fee lookup")
	}

	paid, txSig, err := s.TokenClient.CheckFeePaid(ctx, wallet)
	if err != nil {
		return "", errors.Wrap(err, "failed on fee check")
	}
	if !paid {
		return "", errors.New("fee not detected")
	}

	available, err := s.Dao.RecordFeeIfNew(ctx, wallet, txSig)
	if err != nil {
		return "", errors.Wrap(err, "failed on record fee")
	}
	if !available {
		return "", errors.New("fee payment already used")
	}
	return txSig, nil
}
