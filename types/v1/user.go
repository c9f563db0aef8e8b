package types

import "github.com/google/uuid"

type ConnectWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	// ReferralCode may be a referral code UUID or a referrer's wallet address.
	ReferralCode string `json:"referral_code"`
}

type ConnectWalletResp struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

// UserInfo aggregates a wallet's points, completed tasks and referral count.
type UserInfo struct {
	Wallet         string      `json:"wallet"`
	TotalPoints    int         `json:"total_points"`
	TasksCompleted []uuid.UUID `json:"tasks_completed"`
	Referrals      int64       `json:"referrals"`
	HasClaimed     bool        `json:"has_claimed"`
}

type UserStatsResp struct {
	TotalWallets    int64 `json:"total_wallets"`
	TotalAirdrops   int64 `json:"total_airdrops"`
	TotalAirdropped int64 `json:"total_airdropped"`
}

type RefLinkResp struct {
	Wallet       string `json:"wallet"`
	ReferralCode string `json:"referral_code"`
}
