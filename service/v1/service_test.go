package service_test

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ojohpeters/ecocoin-back/config"
	"github.com/ojohpeters/ecocoin-back/dao"
	"github.com/ojohpeters/ecocoin-back/service/svc"
)

const (
	walletA = "0x1111111111111111111111111111111111111111"
	walletB = "0x2222222222222222222222222222222222222222"
	walletC = "0x3333333333333333333333333333333333333333"
)

// fakeTokenClient stands in for the chain: it reports configured fee state
// and records sends.
type fakeTokenClient struct {
	feePaid bool
	feeSig  string

	sentTo     string
	sentTokens int64
}

func (f *fakeTokenClient) SendTokens(_ context.Context, toWallet string, tokens int64) (string, error) {
	f.sentTo = toWallet
	f.sentTokens = tokens
	return "0xdeadbeef", nil
}

func (f *fakeTokenClient) CheckFeePaid(_ context.Context, _ string) (bool, string, error) {
	return f.feePaid, f.feeSig, nil
}

func newTestCtx(t *testing.T) (*svc.ServerCtx, *fakeTokenClient) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := svc.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	c := &config.Config{}
	c.Points.ReferralPoints = 100
	c.Points.MinClaimPoints = 1000

	fake := &fakeTokenClient{}
	return svc.NewServerCtx(c, dao.NewDao(db), fake), fake
}
