package points

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a participant identified by wallet address. Points accumulate from
// completed tasks and referrals; has_claimed flips once the airdrop is sent
// and freezes further task earnings.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	WalletAddress string     `gorm:"size:100;uniqueIndex;not null" json:"wallet_address"`
	TotalPoints   int        `gorm:"not null;default:0" json:"total_points"`
	ReferrerID    *uuid.UUID `gorm:"type:uuid;index" json:"referrer_id,omitempty"`
	Referrer      *User      `gorm:"foreignKey:ReferrerID" json:"-"`
	ReferralCode  uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"referral_code"`
	HasClaimed    bool       `gorm:"not null;default:false" json:"has_claimed"`
	CreatedAt     time.Time  `json:"created_at"`
}

func UserTableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.ReferralCode == uuid.Nil {
		u.ReferralCode = uuid.New()
	}
	return nil
}
