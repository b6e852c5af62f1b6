package utils

import (
	"encoding/json"
	"strings"
)

// StringOrNumber 兼容网关响应里同一字段时而为 string 时而为 number 的解析
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}
	*s = StringOrNumber(strings.TrimSpace(string(b)))
	return nil
}
