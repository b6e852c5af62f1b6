package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"joinpay-order-api/internal/callback"
	"joinpay-order-api/internal/utils"
)

// NotifyHandler 网关异步通知处理器
type NotifyHandler struct{ verifier *callback.Verifier }

func NewNotifyHandler(verifier *callback.Verifier) *NotifyHandler {
	return &NotifyHandler{verifier: verifier}
}

// JoinPay 接收汇聚支付异步通知
// 应答契约只有 "success"/"error" 两个字面量，任何异常输入都回 "error"
// 让网关按自身策略重发，永远不 5xx。
func (h *NotifyHandler) JoinPay(c *gin.Context) {
	tradeParam := c.Param("tradeParam")

	params := make(map[string]string)
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}
	// 个别通道以表单方式推送，同样收进一张平铺映射
	if len(params) == 0 && c.Request.Method == http.MethodPost {
		if err := c.Request.ParseForm(); err == nil {
			for k, vs := range c.Request.PostForm {
				if len(vs) > 0 {
					params[k] = vs[0]
				}
			}
		}
	}

	outcome := h.verifier.Verify(c.Request.Context(), params, tradeParam)
	log.Printf("[NOTIFY] 通知处理完成, 场景: %s, 订单号: %s, 结论: %s, IP: %s",
		tradeParam, params["r2_OrderNo"], outcome.Token(), utils.GetRealClientIP(c))

	c.String(http.StatusOK, outcome.Token())
}
