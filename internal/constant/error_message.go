package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},
	CodeRedisError:    {"缓存服务错误", "Cache error"},

	// 参数错误
	CodeInvalidParams: {"参数格式错误", "Invalid parameters"},
	CodeMissingParams: {"缺少必要参数", "Missing parameters"},

	// 认证错误
	CodeUnauthorized:   {"未授权访问", "Unauthorized"},
	CodeSignatureError: {"签名验证失败", "Signature verification failed"},

	// 订单错误
	CodeOrderNotFound:      {"订单不存在", "Order not found"},
	CodeOrderAlreadyExist:  {"订单已存在", "Order already exists"},
	CodeOrderAmountInvalid: {"订单金额无效", "Order amount invalid"},

	// 支付错误
	CodePaymentFailed:      {"支付失败", "Payment failed"},
	CodePaymentMethodError: {"支付方式错误", "Payment method error"},

	// 网关错误
	CodeGatewayRejected:    {"网关拒绝交易", "Gateway rejected"},
	CodeGatewayProtocol:    {"网关响应异常", "Gateway protocol error"},
	CodeGatewayUnavailable: {"网关暂时不可用", "Gateway unavailable"},
}
