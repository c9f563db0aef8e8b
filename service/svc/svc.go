package svc

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ojohpeters/ecocoin-back/config"
	"github.com/ojohpeters/ecocoin-back/contract"
	"github.com/ojohpeters/ecocoin-back/dao"
	"github.com/ojohpeters/ecocoin-back/logger/xzap"
	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
)

// TokenClient is the chain surface the services depend on.
type TokenClient interface {
	SendTokens(ctx context.Context, toWallet string, tokens int64) (string, error)
	CheckFeePaid(ctx context.Context, wallet string) (bool, string, error)
}

type ServerCtx struct {
	C           *config.Config
	Dao         *dao.Dao
	TokenClient TokenClient
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	if err := xzap.SetUp(c.Log.Level); err != nil {
		return nil, errors.Wrap(err, "failed on logger setup")
	}

	db, err := gorm.Open(postgres.Open(c.DB.DSN()), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed on connect to database")
	}
	if err := Migrate(db); err != nil {
		return nil, errors.Wrap(err, "failed on migrate database")
	}

	client, err := contract.NewEcoTokenContract(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed on init token contract")
	}

	return &ServerCtx{
		C:           c,
		Dao:         dao.NewDao(db),
		TokenClient: client,
	}, nil
}

// NewServerCtx assembles a context from pre-built parts.
func NewServerCtx(c *config.Config, d *dao.Dao, client TokenClient) *ServerCtx {
	return &ServerCtx{C: c, Dao: d, TokenClient: client}
}

// Migrate creates the points schema: users, tasks, completed_tasks,
// airdrop_log and fee_payments, including the unique (user_id, task_id)
// index and the referrer foreign key.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&points.User{},
		&points.Task{},
		&points.CompletedTask{},
		&points.AirdropLog{},
		&points.FeePayment{},
	)
}
