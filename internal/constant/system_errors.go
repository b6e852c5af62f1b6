package constant

// 系统级错误码 (1xxx)
const (
	CodeSuccess       = 0    // 操作成功
	CodeSystemError   = 1000 // 系统内部错误
	CodeDatabaseError = 1001 // 数据库操作失败
	CodeRedisError    = 1002 // Redis 缓存服务错误
)

// 参数错误码
const (
	CodeInvalidParams = 1100 // 参数格式错误
	CodeMissingParams = 1101 // 缺少必要参数
)

// 认证授权错误码
const (
	CodeUnauthorized   = 1200 // 未授权访问
	CodeSignatureError = 1203 // 签名验证失败
)
