package constant

// 业务级错误码 (2xxx)

// 订单相关错误码
const (
	CodeOrderNotFound      = 2100 // 订单不存在
	CodeOrderAlreadyExist  = 2101 // 订单已存在，请勿重复创建
	CodeOrderAmountInvalid = 2103 // 订单金额无效
)

// 支付相关错误码
const (
	CodePaymentFailed      = 2300 // 支付失败
	CodePaymentMethodError = 2305 // 支付方式错误或未配置
)

// 网关相关错误码 (2400)
const (
	CodeGatewayRejected    = 2400 // 网关拒绝交易
	CodeGatewayProtocol    = 2401 // 网关响应格式异常
	CodeGatewayUnavailable = 2402 // 网关暂时不可用
)
