package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Api             ApiConf      `toml:"api" mapstructure:"api"`
	Log             LogConf      `toml:"log" mapstructure:"log"`
	DB              DBConf       `toml:"db" mapstructure:"db"`
	AirdropContract ContractConf `toml:"airdrop_contract" mapstructure:"airdrop_contract"`
	Points          PointsConf   `toml:"points" mapstructure:"points"`
}

type ApiConf struct {
	Port string `toml:"port" mapstructure:"port"`
}

type LogConf struct {
	Level string `toml:"level" mapstructure:"level"`
}

type DBConf struct {
	Host     string `toml:"host" mapstructure:"host"`
	User     string `toml:"user" mapstructure:"user"`
	Password string `toml:"password" mapstructure:"password"`
	Name     string `toml:"name" mapstructure:"name"`
	Port     string `toml:"port" mapstructure:"port"`
	SSLMode  string `toml:"ssl_mode" mapstructure:"ssl_mode"`
}

// DSN builds the postgres connection string.
func (c DBConf) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type ContractConf struct {
	RPCEndpoint     string `toml:"rpc_endpoint" mapstructure:"rpc_endpoint"`
	WsEndpoint      string `toml:"ws_endpoint" mapstructure:"ws_endpoint"`
	TokenAddress    string `toml:"token_address" mapstructure:"token_address"`
	TreasuryAddress string `toml:"treasury_address" mapstructure:"treasury_address"`
	PrivateKey      string `toml:"private_key" mapstructure:"private_key"`
	ChainID         int64  `toml:"chain_id" mapstructure:"chain_id"`
	GasPrice        int64  `toml:"gas_price" mapstructure:"gas_price"`
	TokenDecimals   int32  `toml:"token_decimals" mapstructure:"token_decimals"`
	// ClaimFeeAmount is the raw token amount a wallet must transfer to the
	// treasury before claiming.
	ClaimFeeAmount int64 `toml:"claim_fee_amount" mapstructure:"claim_fee_amount"`
	// FeeScanBlocks bounds the on-demand log scan when no recorded fee
	// payment is found.
	FeeScanBlocks uint64 `toml:"fee_scan_blocks" mapstructure:"fee_scan_blocks"`
}

type PointsConf struct {
	ReferralPoints int `toml:"referral_points" mapstructure:"referral_points"`
	MinClaimPoints int `toml:"min_claim_points" mapstructure:"min_claim_points"`
}

func UnmarshalConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read config file")
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal config")
	}

	if c.Api.Port == "" {
		c.Api.Port = ":8080"
	}
	if c.Points.ReferralPoints == 0 {
		c.Points.ReferralPoints = 100
	}
	if c.Points.MinClaimPoints == 0 {
		c.Points.MinClaimPoints = 1000
	}
	if c.AirdropContract.TokenDecimals == 0 {
		c.AirdropContract.TokenDecimals = 6
	}
	if c.AirdropContract.FeeScanBlocks == 0 {
		c.AirdropContract.FeeScanBlocks = 5000
	}

	if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
		return nil, errors.New("db.host, db.user and db.name are required")
	}

	return c, nil
}
