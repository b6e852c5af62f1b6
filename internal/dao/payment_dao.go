package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"joinpay-order-api/internal/model"
)

type PaymentDao struct {
	DB *gorm.DB
}

// 支持传入自定义 DB（比如 txDB 或单测连接）
func NewPaymentDao(db *gorm.DB) *PaymentDao {
	return &PaymentDao{DB: db}
}

func (r *PaymentDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

// 插入待支付记录
func (r *PaymentDao) Insert(ctx context.Context, rec *model.PaymentRecord) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert payment failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(rec).Error
}

// 根据商户订单号获取支付记录，不存在时返回 (nil, nil)
func (r *PaymentDao) GetByOrderNo(ctx context.Context, orderNo string) (*model.PaymentRecord, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by order no failed: %w", err)
	}
	var m model.PaymentRecord
	err := r.DB.WithContext(ctx).Where("order_no = ?", orderNo).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// MarkPaid 待支付 -> 已支付的原子更替
// 条件更新保证并发重复通知最多一次生效，返回受影响行数由调用方判定。
func (r *PaymentDao) MarkPaid(ctx context.Context, orderNo, bankTrxNo string) (int64, error) {
	if err := r.checkDB(); err != nil {
		return 0, fmt.Errorf("mark paid failed: %w", err)
	}
	now := time.Now()
	res := r.DB.WithContext(ctx).Model(&model.PaymentRecord{}).
		Where("order_no = ? AND status = ?", orderNo, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":      model.PaymentStatusPaid,
			"bank_trx_no": bankTrxNo,
			"paid_at":     now,
			"updated_at":  now,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("mark paid update failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// 写入资金日志
func (r *PaymentDao) CreateMoneyLog(ctx context.Context, entry *model.MoneyLog) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("create money log failed: %w", err)
	}
	return r.DB.WithContext(ctx).Create(entry).Error
}
