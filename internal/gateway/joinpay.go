package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"joinpay-order-api/internal/utils"
)

// 网关受理成功状态码
const codeAccepted = 100

// Config 汇聚支付商户配置，启动时构建一次，只读共享
type Config struct {
	AppID           string // 应用编号
	TradeMerchantNo string // 报备商户号
	MerchantNo      string // 平台商户号
	MerchantKey     string // 平台商户密钥
	PayAPIURL       string
	QueryAPIURL     string
	NotifyBaseURL   string
}

// CreateOrderReq 网关下单请求
type CreateOrderReq struct {
	OpenID      string // 会员 OPENID，可为空，为空时不参与签名
	OrderNo     string
	AmountYuan  string // 元为单位的原始金额
	AmountFen   int64  // 分为单位的交易金额
	Title       string
	Description string
	PayType     string // 平台支付方式，见 trade_types.go
	ChannelCode string // 通道编码，参与回调场景参数
}

// PendingPayment 网关受理后需要落地的待支付记录
type PendingPayment struct {
	OrderNo      string
	TradeChannel string // 回调场景参数 payType-channelCode
	Amount       string // 元
	Title        string
	OpenID       string
}

// PendingStore 待支付记录存储协作方，仅在网关受理成功后调用一次
type PendingStore interface {
	CreatePending(ctx context.Context, rec PendingPayment) error
}

// Client 汇聚支付网关客户端
type Client struct {
	cfg       Config
	transport Transport
	store     PendingStore
}

func NewClient(cfg Config, transport Transport, store PendingStore) *Client {
	return &Client{cfg: cfg, transport: transport, store: store}
}

// CreateOrder 网关统一下单
// 受理成功返回 rc_Result 内的客户端支付参数，并创建一条待支付记录；
// 网关拒绝、响应异常、网络故障分别以对应分类的 *Error 返回。
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderReq) (map[string]any, error) {
	frpCode, ok := ResolveFrpCode(req.PayType)
	if !ok {
		return nil, newError(KindConfig, fmt.Sprintf("支付类型[%s]未配置定义", req.PayType))
	}
	tradeParam := TradeParam(req.PayType, req.ChannelCode)

	data := map[string]string{
		"p0_Version":         "1.0",
		"p1_MerchantNo":      c.cfg.MerchantNo,
		"p2_OrderNo":         req.OrderNo,
		"p3_Amount":          strconv.FormatInt(req.AmountFen, 10),
		"p4_Cur":             "1",
		"p5_ProductName":     req.Title,
		"p6_ProductDesc":     req.Description,
		"p9_NotifyUrl":       c.cfg.NotifyBaseURL + "/" + tradeParam,
		"q1_FrpCode":         frpCode,
		"q7_AppId":           c.cfg.AppID,
		"qa_TradeMerchantNo": c.cfg.TradeMerchantNo,
	}
	// OPENID 为空时整个键不进报文，否则签名不对称
	if req.OpenID != "" {
		data["q5_OpenId"] = req.OpenID
	}

	body, err := c.doRequest(ctx, c.cfg.PayAPIURL, data)
	if err != nil {
		return nil, err
	}

	var env struct {
		RaCode    utils.StringOrNumber `json:"ra_Code"`
		RbCodeMsg utils.FlexibleMsg    `json:"rb_CodeMsg"`
		RcResult  string               `json:"rc_Result"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, wrapError(KindTransport, "网关响应非JSON", err)
	}

	if code, err := strconv.Atoi(string(env.RaCode)); err == nil && code == codeAccepted {
		var payParams map[string]any
		if err := json.Unmarshal([]byte(env.RcResult), &payParams); err != nil {
			return nil, wrapError(KindProtocol, "rc_Result 解析失败", err)
		}
		// 网关受理之后才创建待支付记录，保证被拒绝的订单不留本地痕迹
		rec := PendingPayment{
			OrderNo:      req.OrderNo,
			TradeChannel: tradeParam,
			Amount:       req.AmountYuan,
			Title:        req.Title,
			OpenID:       req.OpenID,
		}
		if err := c.store.CreatePending(ctx, rec); err != nil {
			return nil, fmt.Errorf("create pending payment: %w", err)
		}
		log.Printf("[JOINPAY] 下单受理成功, 订单号: %s, 通道: %s", req.OrderNo, tradeParam)
		return payParams, nil
	}
	if env.RbCodeMsg.Text != "" {
		return nil, newError(KindRejected, env.RbCodeMsg.Text)
	}
	return nil, newError(KindProtocol, "获取预支付码失败")
}

// QueryOrder 网关订单查询，纯读，不落任何本地状态
func (c *Client) QueryOrder(ctx context.Context, orderNo string) (map[string]any, error) {
	data := map[string]string{
		"p1_MerchantNo": c.cfg.MerchantNo,
		"p2_OrderNo":    orderNo,
	}
	body, err := c.doRequest(ctx, c.cfg.QueryAPIURL, data)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, wrapError(KindTransport, "网关响应非JSON", err)
	}
	return result, nil
}

// doRequest 统一签名并提交报文
func (c *Client) doRequest(ctx context.Context, apiURL string, data map[string]string) ([]byte, error) {
	data[utils.SignField] = utils.GenerateSign(data, c.cfg.MerchantKey)
	body, err := c.transport.Post(ctx, apiURL, data)
	if err != nil {
		return nil, wrapError(KindTransport, "请求网关失败", err)
	}
	return body, nil
}
