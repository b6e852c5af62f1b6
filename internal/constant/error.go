package constant

import "fmt"

// Error 带错误码的业务错误
type Error interface {
	error
	Code() int
	Message() string
}

type codedError struct {
	code    int
	message string
}

func (e *codedError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *codedError) Code() int { return e.code }

func (e *codedError) Message() string { return e.message }

// NewError 按错误码创建业务错误
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &codedError{code: code, message: info.CN}
	}
	return &codedError{code: code, message: "未知错误"}
}

// GetErrorInfo 获取错误码对应的中英文描述
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}
