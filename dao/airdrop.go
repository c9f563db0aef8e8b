package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ojohpeters/ecocoin-back/stores/gdb/points"
)

func (d *Dao) CreateAirdropLog(c context.Context, entry *points.AirdropLog) error {
	return d.DB.WithContext(c).Create(entry).Error
}

func (d *Dao) CountAirdrops(c context.Context) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).Model(&points.AirdropLog{}).Count(&count).Error
	return count, err
}

func (d *Dao) SumAirdropped(c context.Context) (int64, error) {
	var total int64
	err := d.DB.WithContext(c).Model(&points.AirdropLog{}).
		Select("COALESCE(SUM(amount_sent), 0)").Scan(&total).Error
	return total, err
}

// GetUnusedFeePayment returns the oldest unconsumed fee payment for a wallet.
func (d *Dao) GetUnusedFeePayment(c context.Context, wallet string) (*points.FeePayment, error) {
	var fee points.FeePayment
	err := d.DB.WithContext(c).
		Table(points.FeePaymentTableName()).
		Where("wallet_address = ? AND used = ?", wallet, false).
		Order("created_at").First(&fee).Error
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// RecordFeeIfNew inserts a fee payment unless its tx signature is already
// known. Returns whether the payment is still available for a claim.
func (d *Dao) RecordFeeIfNew(c context.Context, wallet, txSig string) (bool, error) {
	var existing points.FeePayment
	err := d.DB.WithContext(c).
		Table(points.FeePaymentTableName()).Where("tx_signature = ?", txSig).First(&existing).Error
	if err == nil {
		return !existing.Used, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fee := &points.FeePayment{WalletAddress: wallet, TxSignature: txSig}
	if err := d.DB.WithContext(c).Create(fee).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (d *Dao) MarkFeeUsed(c context.Context, wallet, txSig string) error {
	return d.DB.WithContext(c).Model(&points.FeePayment{}).
		Where("wallet_address = ? AND tx_signature = ?", wallet, txSig).
		Update("used", true).Error
}
