package points

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AirdropLog is an append-only record of token sends. Rows are never updated
// or deleted; tx_signature stays null when the send was recorded before the
// transaction hash was known.
type AirdropLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string    `gorm:"size:100;not null;index" json:"wallet_address"`
	AmountSent    int64     `gorm:"not null" json:"amount_sent"`
	TxSignature   *string   `gorm:"size:200" json:"tx_signature,omitempty"`
	SentAt        time.Time `gorm:"not null" json:"sent_at"`
}

func (AirdropLog) TableName() string {
	return "airdrop_log"
}

func AirdropLogTableName() string {
	return "airdrop_log"
}

func (a *AirdropLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.SentAt.IsZero() {
		a.SentAt = time.Now()
	}
	return nil
}

// FeePayment tracks claim-fee transfers into the treasury wallet. A payment
// is consumed exactly once: used flips when the airdrop it unlocked is sent.
type FeePayment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string    `gorm:"size:100;not null;index" json:"wallet_address"`
	TxSignature   string    `gorm:"size:200;uniqueIndex;not null" json:"tx_signature"`
	Used          bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt     time.Time `json:"created_at"`
}

func (FeePayment) TableName() string {
	return "fee_payments"
}

func FeePaymentTableName() string {
	return "fee_payments"
}

func (f *FeePayment) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
