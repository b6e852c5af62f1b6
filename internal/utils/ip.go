package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealClientIP 获取客户端真实 IP，反向代理场景优先取转发头
func GetRealClientIP(c *gin.Context) string {
	for _, header := range []string{"X-Real-IP", "X-Forwarded-For"} {
		ipList := c.Request.Header.Get(header)
		if ipList == "" {
			continue
		}
		// X-Forwarded-For 可能包含多个IP，取第一个合法IP
		for _, ip := range strings.Split(ipList, ",") {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	return c.ClientIP()
}
