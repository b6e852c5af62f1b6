package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"joinpay-order-api/internal/constant"
	"joinpay-order-api/internal/dto"
	"joinpay-order-api/internal/gateway"
	"joinpay-order-api/internal/service"
	"joinpay-order-api/internal/utils"
)

// PayHandler 下单/查单处理器
type PayHandler struct{ svc *service.PayService }

func NewPayHandler(svc *service.PayService) *PayHandler {
	return &PayHandler{svc: svc}
}

// Create 创建支付订单
func (h *PayHandler) Create(c *gin.Context) {
	var req dto.CreatePayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(constant.CodeInvalidParams))
		return
	}
	log.Printf("[PAY] 收到下单请求, 订单号: %s, 金额: %s, 支付方式: %s, IP: %s",
		req.OrderNo, req.Amount, req.PayType, utils.GetRealClientIP(c))

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusOK, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// Query 查询支付订单
func (h *PayHandler) Query(c *gin.Context) {
	orderNo := c.Param("orderNo")
	if orderNo == "" {
		c.JSON(http.StatusOK, utils.Error(constant.CodeMissingParams))
		return
	}

	resp, err := h.svc.Query(c.Request.Context(), orderNo)
	if err != nil {
		c.JSON(http.StatusOK, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// errorResponse 业务错误与网关错误统一转响应
func errorResponse(err error) utils.Response {
	var bizErr constant.Error
	if errors.As(err, &bizErr) {
		return utils.Error(bizErr.Code())
	}
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		switch gwErr.Kind {
		case gateway.KindConfig:
			return utils.CustomError(constant.CodePaymentMethodError, gwErr.Msg)
		case gateway.KindRejected:
			return utils.CustomError(constant.CodeGatewayRejected, gwErr.Msg)
		case gateway.KindProtocol:
			return utils.Error(constant.CodeGatewayProtocol)
		default:
			return utils.Error(constant.CodeGatewayUnavailable)
		}
	}
	return utils.Error(constant.CodeSystemError)
}
