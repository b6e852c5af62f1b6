package model

import "time"

// 支付记录状态
const (
	PaymentStatusPending int8 = 1 // 待支付
	PaymentStatusPaid    int8 = 2 // 已支付
	PaymentStatusFailed  int8 = 3 // 支付失败
)

// PaymentRecord 支付记录表 p_payment
type PaymentRecord struct {
	PaymentID    uint64     `gorm:"column:payment_id;primaryKey"`
	OrderNo      string     `gorm:"column:order_no;uniqueIndex"`
	TradeChannel string     `gorm:"column:trade_channel"` // 支付方式-通道编码
	Amount       string     `gorm:"column:amount"`        // 元
	Status       int8       `gorm:"column:status"`
	Title        string     `gorm:"column:title"`
	OpenID       string     `gorm:"column:open_id"`
	BankTrxNo    string     `gorm:"column:bank_trx_no"` // 网关银行流水号
	PaidAt       *time.Time `gorm:"column:paid_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (PaymentRecord) TableName() string { return "p_payment" }

// MoneyLog 商户资金日志表 p_money_log，由支付完成事件消费端写入
type MoneyLog struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNo     string    `gorm:"column:order_no"`
	BankTrxNo   string    `gorm:"column:bank_trx_no"`
	Money       string    `gorm:"column:money"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (MoneyLog) TableName() string { return "p_money_log" }
