package callback

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"joinpay-order-api/internal/settlement"
	"joinpay-order-api/internal/utils"
)

// 网关支付成功状态码
const statusPaid = 100

// Outcome 通知处理结论，决定回给网关的应答令牌
type Outcome int

const (
	OutcomeAccepted     Outcome = iota + 1 // 通知受理，网关不再重发
	OutcomeBadSignature                    // 签名缺失或校验失败
	OutcomeApplyFailed                     // 结算落地失败，等网关重发
)

// Token 网关回调的全部应答契约就是这两个字面量
func (o Outcome) Token() string {
	if o == OutcomeAccepted {
		return "success"
	}
	return "error"
}

// Verifier 汇聚异步通知校验器
// 单次调用无内部状态，是否落库由 applier 决定，自身不持锁不重试。
type Verifier struct {
	secret  string
	applier settlement.Applier
}

func NewVerifier(secret string, applier settlement.Applier) *Verifier {
	return &Verifier{secret: secret, applier: applier}
}

// Verify 校验并处理一条异步通知
// 值先整体 URL 解码再验签；验签通过且 r6_Status 为成功码才触发结算，
// 其余状态仅确认收到，避免网关反复重发中间态通知。
func (v *Verifier) Verify(ctx context.Context, params map[string]string, tradeParam string) Outcome {
	notify := make(map[string]string, len(params))
	for k, val := range params {
		if decoded, err := url.QueryUnescape(val); err == nil {
			notify[k] = decoded
		} else {
			notify[k] = val
		}
	}

	if !utils.VerifySign(notify, v.secret) {
		log.Printf("[NOTIFY] 签名校验失败, 场景: %s, 订单号: %s", tradeParam, notify["r2_OrderNo"])
		return OutcomeBadSignature
	}

	status, err := strconv.Atoi(notify["r6_Status"])
	if err != nil || status != statusPaid {
		// 中间态或失败态通知：确认收到即可，不触发结算
		log.Printf("[NOTIFY] 非成功状态通知, 场景: %s, 订单号: %s, r6_Status: %s", tradeParam, notify["r2_OrderNo"], notify["r6_Status"])
		return OutcomeAccepted
	}

	result := v.applier.Apply(ctx, tradeParam, notify["r2_OrderNo"], notify["r9_BankTrxNo"], notify["r3_Amount"])
	switch result {
	case settlement.Applied, settlement.AlreadyApplied:
		return OutcomeAccepted
	default:
		return OutcomeApplyFailed
	}
}
