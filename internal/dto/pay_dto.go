package dto

// CreatePayReq 商户下单请求
type CreatePayReq struct {
	OrderNo     string `json:"order_no" binding:"required,max=64"`
	Amount      string `json:"amount" binding:"required"` // 元
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=256"`
	PayType     string `json:"pay_type" binding:"required"`
	ChannelCode string `json:"channel_code" binding:"required"`
	OpenID      string `json:"open_id"` // 公众号/小程序支付必填，其余场景留空
}

// CreatePayResp 下单响应，PayParams 为网关返回的客户端拉起支付参数
type CreatePayResp struct {
	OrderNo   string         `json:"order_no"`
	PaymentID string         `json:"payment_id"`
	PayParams map[string]any `json:"pay_params"`
}

// QueryPayResp 订单查询响应：本地记录 + 网关查单透传
type QueryPayResp struct {
	OrderNo       string         `json:"order_no"`
	Status        int8           `json:"status"`
	Amount        string         `json:"amount"`
	TradeChannel  string         `json:"trade_channel"`
	BankTrxNo     string         `json:"bank_trx_no,omitempty"`
	GatewayResult map[string]any `json:"gateway_result,omitempty"`
}
