package service_test

import (
	"context"
	"testing"

	service "github.com/ojohpeters/ecocoin-back/service/v1"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
)

func TestConnectWalletIdempotent(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()

	res, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: walletA})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	again, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: walletA})
	if err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	if res.UserID != again.UserID {
		t.Errorf("expected same user on reconnect, got %s vs %s", res.UserID, again.UserID)
	}

	info, err := service.GetUserInfo(ctx, s, walletA)
	if err != nil {
		t.Fatalf("get info: %v", err)
	}
	if info.TotalPoints != 0 {
		t.Errorf("expected 0 points for fresh wallet, got %d", info.TotalPoints)
	}
	if info.HasClaimed {
		t.Error("expected has_claimed=false for fresh wallet")
	}
}

func TestConnectWalletRejectsBadAddress(t *testing.T) {
	s, _ := newTestCtx(t)

	_, err := service.ConnectWallet(context.Background(), s, types.ConnectWalletRequest{WalletAddress: "not-an-address"})
	if err == nil {
		t.Fatal("expected invalid wallet address to be rejected")
	}
}

func TestReferralCredit(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()

	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: walletA}); err != nil {
		t.Fatalf("connect referrer: %v", err)
	}
	link, err := service.GetRefLink(ctx, s, walletA)
	if err != nil {
		t.Fatalf("ref link: %v", err)
	}

	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{
		WalletAddress: walletB,
		ReferralCode:  link.ReferralCode,
	}); err != nil {
		t.Fatalf("connect referred: %v", err)
	}

	info, err := service.GetUserInfo(ctx, s, walletA)
	if err != nil {
		t.Fatalf("get referrer info: %v", err)
	}
	if info.TotalPoints != 100 {
		t.Errorf("expected referrer to earn 100 points, got %d", info.TotalPoints)
	}
	if info.Referrals != 1 {
		t.Errorf("expected 1 referral, got %d", info.Referrals)
	}

	// Reconnecting with the same code must not credit twice.
	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{
		WalletAddress: walletB,
		ReferralCode:  link.ReferralCode,
	}); err != nil {
		t.Fatalf("reconnect referred: %v", err)
	}
	info, _ = service.GetUserInfo(ctx, s, walletA)
	if info.TotalPoints != 100 {
		t.Errorf("expected points unchanged after reconnect, got %d", info.TotalPoints)
	}
}

func TestReferralByWalletAddress(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()

	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: walletA}); err != nil {
		t.Fatalf("connect referrer: %v", err)
	}
	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{
		WalletAddress: walletC,
		ReferralCode:  walletA,
	}); err != nil {
		t.Fatalf("connect referred: %v", err)
	}

	info, _ := service.GetUserInfo(ctx, s, walletA)
	if info.TotalPoints != 100 {
		t.Errorf("expected referrer wallet code to credit 100 points, got %d", info.TotalPoints)
	}
}

func TestSelfReferralIgnored(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()

	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: walletA}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{
		WalletAddress: walletA,
		ReferralCode:  walletA,
	}); err != nil {
		t.Fatalf("self-referral connect: %v", err)
	}

	info, _ := service.GetUserInfo(ctx, s, walletA)
	if info.TotalPoints != 0 {
		t.Errorf("expected self-referral to credit nothing, got %d", info.TotalPoints)
	}
}

func TestUnknownReferralCodeIgnored(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()

	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{
		WalletAddress: walletA,
		ReferralCode:  "b77bff35-70dd-4a61-8141-a01db38ec85e",
	}); err != nil {
		t.Fatalf("expected unknown code to be ignored, got %v", err)
	}
}
