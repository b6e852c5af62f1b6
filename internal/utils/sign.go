package utils

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// SignField 签名字段名，摘要计算时永远排除自身
const SignField = "hmac"

// GenerateSign 生成汇聚签名（用于请求或验证）
// 规则：剔除 hmac 字段，其余按键名升序，仅取值无分隔符拼接，末尾追加密钥后取 MD5。
// 注意空值仍参与拼接，只有整个键缺失才不进摘要。
func GenerateSign(params map[string]string, secretKey string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SignField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(params[k])
	}
	sb.WriteString(secretKey)

	hash := md5.Sum([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}

// VerifySign 验证签名是否匹配
func VerifySign(params map[string]string, secretKey string) bool {
	receivedSign := params[SignField]
	if receivedSign == "" {
		return false
	}
	expectedSign := GenerateSign(params, secretKey)
	return hmac.Equal([]byte(strings.ToLower(receivedSign)), []byte(expectedSign))
}
