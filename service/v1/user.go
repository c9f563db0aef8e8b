package service

import (
	"context"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ojohpeters/ecocoin-back/common"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
	"github.com/ojohpeters/ecocoin-back/service/svc"
	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
)

// ConnectWallet registers a wallet on first contact. When a referral code
// resolves to another user, attribution is linked once and the referrer is
// credited the configured referral points.
func ConnectWallet(ctx context.Context, s *svc.ServerCtx, req types.ConnectWalletRequest) (*types.ConnectWalletResp, error) {
	wallet, err := common.UnifyAddress(req.WalletAddress)
	if err != nil {
		return nil, err
	}

	user, err := s.Dao.CreateUserIfAbsent(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed on create user")
	}

	if req.ReferralCode != "" {
		if err := linkReferrer(ctx, s, user, req.ReferralCode); err != nil {
			return nil, err
		}
	}

	return &types.ConnectWalletResp{
		Status: "wallet connected",
		UserID: user.ID.String(),
	}, nil
}

// linkReferrer resolves a referral code (code UUID or referrer wallet) and
// links it to the user. Unresolvable codes are ignored; self-referrals are
// rejected silently. Points are credited only when this call set the link,
// so reconnecting with the same code cannot double-credit.
func linkReferrer(ctx context.Context, s *svc.ServerCtx, user *points.User, code string) error {
	referrer, err := resolveReferrer(ctx, s, code)
	if err != nil {
		return errors.Wrap(err, "failed on referral lookup")
	}
	if referrer == nil || referrer.ID == user.ID {
		return nil
	}

	linked, err := s.Dao.SetReferrer(ctx, user.ID, referrer.ID)
	if err != nil {
		return errors.Wrap(err, "failed on link referrer")
	}
	if !linked {
		return nil
	}

	if err := s.Dao.AddPoints(ctx, referrer.ID, s.C.Points.ReferralPoints); err != nil {
		return errors.Wrap(err, "failed on credit referral")
	}

	xzap.WithContext(ctx).Info("referral credited",
		zap.String("referrer", referrer.WalletAddress),
		zap.String("referred", user.WalletAddress))
	return nil
}

func resolveReferrer(ctx context.Context, s *svc.ServerCtx, code string) (*points.User, error) {
	var (
		referrer *points.User
		err      error
	)
	if id, parseErr := uuid.Parse(code); parseErr == nil {
		referrer, err = s.Dao.GetUserByReferralCode(ctx, id)
	} else if gethcommon.IsHexAddress(code) {
		wallet, uErr := common.UnifyAddress(code)
		if uErr != nil {
			return nil, nil
		}
		referrer, err = s.Dao.GetUserByWallet(ctx, wallet)
	} else {
		return nil, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return referrer, err
}

// GetUserInfo returns a wallet's points, completed task ids and referral
// count.
func GetUserInfo(ctx context.Context, s *svc.ServerCtx, wallet string) (*types.UserInfo, error) {
	wallet, err := common.UnifyAddress(wallet)
	if err != nil {
		return nil, err
	}

	user, err := s.Dao.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user")
	}

	taskIDs, err := s.Dao.GetCompletedTaskIDs(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get completed tasks")
	}
	if taskIDs == nil {
		taskIDs = []uuid.UUID{}
	}

	referrals, err := s.Dao.CountReferralsByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on count referrals")
	}

	return &types.UserInfo{
		Wallet:         user.WalletAddress,
		TotalPoints:    user.TotalPoints,
		TasksCompleted: taskIDs,
		Referrals:      referrals,
		HasClaimed:     user.HasClaimed,
	}, nil
}

func GetUserStats(ctx context.Context, s *svc.ServerCtx) (*types.UserStatsResp, error) {
	wallets, err := s.Dao.CountUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed on count users")
	}
	airdrops, err := s.Dao.CountAirdrops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed on count airdrops")
	}
	airdropped, err := s.Dao.SumAirdropped(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed on sum airdrops")
	}

	return &types.UserStatsResp{
		TotalWallets:    wallets,
		TotalAirdrops:   airdrops,
		TotalAirdropped: airdropped,
	}, nil
}

func GetRefLink(ctx context.Context, s *svc.ServerCtx, wallet string) (*types.RefLinkResp, error) {
	wallet, err := common.UnifyAddress(wallet)
	if err != nil {
		return nil, err
	}

	user, err := s.Dao.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed on get user")
	}

	return &types.RefLinkResp{
		Wallet:       user.WalletAddress,
		ReferralCode: user.ReferralCode.String(),
	}, nil
}
