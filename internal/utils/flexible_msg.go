package utils

import "encoding/json"

// FlexibleMsg 容忍网关把错误描述发成 string 或任意 JSON 结构
type FlexibleMsg struct {
	Text string
}

func (m *FlexibleMsg) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Text = s
		return nil
	}
	// 非字符串结构整体转存为文本
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err == nil {
		m.Text = string(raw)
		return nil
	}
	m.Text = string(data)
	return nil
}
