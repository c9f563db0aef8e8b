package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ojohpeters/ecocoin-back/service/svc"
	service "github.com/ojohpeters/ecocoin-back/service/v1"
	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
)

func registerWithPoints(t *testing.T, s *svc.ServerCtx, wallet string, pts int) {
	t.Helper()
	ctx := context.Background()
	if _, err := service.ConnectWallet(ctx, s, types.ConnectWalletRequest{WalletAddress: wallet}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	user, err := s.Dao.GetUserByWallet(ctx, wallet)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if err := s.Dao.AddPoints(ctx, user.ID, pts); err != nil {
		t.Fatalf("add points: %v", err)
	}
}

func TestClaimAirdropNotEnoughPoints(t *testing.T) {
	s, _ := newTestCtx(t)
	registerWithPoints(t, s, walletA, 500)

	_, err := service.ClaimAirdrop(context.Background(), s, walletA)
	if err == nil || !strings.Contains(err.Error(), "not enough points") {
		t.Fatalf("expected not-enough-points rejection, got %v", err)
	}
}

func TestClaimAirdropFeeNotDetected(t *testing.T) {
	s, fake := newTestCtx(t)
	registerWithPoints(t, s, walletA, 1500)
	fake.feePaid = false

	_, err := service.ClaimAirdrop(context.Background(), s, walletA)
	if err == nil || !strings.Contains(err.Error(), "fee not detected") {
		t.Fatalf("expected fee rejection, got %v", err)
	}
}

func TestClaimAirdropWithRecordedFee(t *testing.T) {
	s, fake := newTestCtx(t)
	ctx := context.Background()
	registerWithPoints(t, s, walletA, 1500)

	if _, err := s.Dao.RecordFeeIfNew(ctx, walletA, "0xfee1"); err != nil {
		t.Fatalf("record fee: %v", err)
	}

	res, err := service.ClaimAirdrop(ctx, s, walletA)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Tokens != 1500 {
		t.Errorf("expected 1500 tokens sent, got %d", res.Tokens)
	}
	if fake.sentTo != walletA || fake.sentTokens != 1500 {
		t.Errorf("expected send of 1500 to %s, got %d to %s", walletA, fake.sentTokens, fake.sentTo)
	}

	var logs []points.AirdropLog
	if err := s.Dao.DB.Find(&logs).Error; err != nil {
		t.Fatalf("load airdrop log: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 airdrop log row, got %d", len(logs))
	}
	if logs[0].AmountSent != 1500 {
		t.Errorf("expected amount_sent=1500, got %d", logs[0].AmountSent)
	}
	if logs[0].TxSignature == nil || *logs[0].TxSignature != res.TxHash {
		t.Errorf("expected tx_signature=%s, got %v", res.TxHash, logs[0].TxSignature)
	}

	user, _ := s.Dao.GetUserByWallet(ctx, walletA)
	if !user.HasClaimed {
		t.Error("expected has_claimed=true after claim")
	}

	// The fee payment is consumed; a second claim is rejected outright.
	fee, err := s.Dao.GetUnusedFeePayment(ctx, walletA)
	if err == nil {
		t.Errorf("expected fee to be consumed, found %+v", fee)
	}
	if _, err := service.ClaimAirdrop(ctx, s, walletA); err == nil ||
		!strings.Contains(err.Error(), "already claimed") {
		t.Fatalf("expected repeat claim rejection, got %v", err)
	}
}

func TestClaimAirdropWithChainScan(t *testing.T) {
	s, fake := newTestCtx(t)
	ctx := context.Background()
	registerWithPoints(t, s, walletA, 2000)
	fake.feePaid = true
	fake.feeSig = "0xfee2"

	res, err := service.ClaimAirdrop(ctx, s, walletA)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Tokens != 2000 {
		t.Errorf("expected 2000 tokens, got %d", res.Tokens)
	}

	// The scanned fee was recorded and consumed.
	var fees []points.FeePayment
	if err := s.Dao.DB.Find(&fees).Error; err != nil {
		t.Fatalf("load fees: %v", err)
	}
	if len(fees) != 1 || !fees[0].Used || fees[0].TxSignature != "0xfee2" {
		t.Errorf("expected one used fee 0xfee2, got %+v", fees)
	}
}

func TestGetUserStats(t *testing.T) {
	s, _ := newTestCtx(t)
	ctx := context.Background()
	registerWithPoints(t, s, walletA, 1500)
	registerWithPoints(t, s, walletB, 0)

	if _, err := s.Dao.RecordFeeIfNew(ctx, walletA, "0xfee3"); err != nil {
		t.Fatalf("record fee: %v", err)
	}
	if _, err := service.ClaimAirdrop(ctx, s, walletA); err != nil {
		t.Fatalf("claim: %v", err)
	}

	stats, err := service.GetUserStats(ctx, s)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalWallets != 2 {
		t.Errorf("expected 2 wallets, got %d", stats.TotalWallets)
	}
	if stats.TotalAirdrops != 1 {
		t.Errorf("expected 1 airdrop, got %d", stats.TotalAirdrops)
	}
	if stats.TotalAirdropped != 1500 {
		t.Errorf("expected 1500 airdropped, got %d", stats.TotalAirdropped)
	}
}
