package gateway

import "fmt"

// Kind 网关错误分类
type Kind int

const (
	// KindConfig 本地配置错误（如支付类型未注册），不重试
	KindConfig Kind = iota + 1
	// KindRejected 网关明确拒绝交易，携带网关返回的原因
	KindRejected
	// KindProtocol 网关响应格式异常
	KindProtocol
	// KindTransport 网络层故障（超时、连接失败、非 JSON 响应体）
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRejected:
		return "rejected"
	case KindProtocol:
		return "protocol"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error 网关调用错误
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("gateway %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind 判断错误是否为指定分类的网关错误
func IsKind(err error, kind Kind) bool {
	ge, ok := err.(*Error)
	return ok && ge.Kind == kind
}
