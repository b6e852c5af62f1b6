package dto

// PaymentPaidEvent 支付完成事件
type PaymentPaidEvent struct {
	OrderNo      string `json:"order_no"`
	TradeChannel string `json:"trade_channel"`
	BankTrxNo    string `json:"bank_trx_no"`
	Amount       string `json:"amount"`
	PaidAt       int64  `json:"paid_at"`
}
