package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
)

// CreateUserIfAbsent inserts a user for the wallet, or returns the existing
// row when the wallet is already registered.
func (d *Dao) CreateUserIfAbsent(c context.Context, wallet string) (*points.User, error) {
	user := &points.User{WalletAddress: wallet}
	res := d.DB.WithContext(c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoNothing: true,
	}).Create(user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return d.GetUserByWallet(c, wallet)
	}
	return user, nil
}

func (d *Dao) GetUserByWallet(c context.Context, wallet string) (*points.User, error) {
	var user points.User
	err := d.DB.WithContext(c).
		Table(points.UserTableName()).Where("wallet_address = ?", wallet).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Dao) GetUserByID(c context.Context, id uuid.UUID) (*points.User, error) {
	var user points.User
	err := d.DB.WithContext(c).
		Table(points.UserTableName()).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Dao) GetUserByReferralCode(c context.Context, code uuid.UUID) (*points.User, error) {
	var user points.User
	err := d.DB.WithContext(c).
		Table(points.UserTableName()).Where("referral_code = ?", code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetReferrer links a referrer once. The guard on referrer_id IS NULL keeps
// the first attribution; reports whether this call set the link.
func (d *Dao) SetReferrer(c context.Context, userID, referrerID uuid.UUID) (bool, error) {
	res := d.DB.WithContext(c).Model(&points.User{}).
		Where("id = ? AND referrer_id IS NULL", userID).
		Update("referrer_id", referrerID)
	return res.RowsAffected > 0, res.Error
}

func (d *Dao) AddPoints(c context.Context, userID uuid.UUID, delta int) error {
	return d.DB.WithContext(c).Model(&points.User{}).
		Where("id = ?", userID).
		Update("total_points", gorm.Expr("total_points + ?", delta)).Error
}

func (d *Dao) SetClaimed(c context.Context, wallet string) error {
	return d.DB.WithContext(c).Model(&points.User{}).
		Where("wallet_address = ?", wallet).
		Update("has_claimed", true).Error
}

func (d *Dao) CountUsers(c context.Context) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&points.User{}).Count(&count).Error
	return count, err
}

func (d *Dao) CountReferralsByUser(c context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&points.User{}).
		Where("referrer_id = ?", userID).Count(&count).Error
	return count, err
}
