package settlement

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"joinpay-order-api/internal/dao"
	"joinpay-order-api/internal/dto"
	"joinpay-order-api/internal/event"
	"joinpay-order-api/internal/model"
	"joinpay-order-api/internal/utils"
)

// ApplyResult 结算结果
type ApplyResult int

const (
	Applied        ApplyResult = iota + 1 // 本次完成 待支付->已支付
	AlreadyApplied                        // 订单早已支付，幂等空操作
	NotFound                              // 订单不存在
	AmountMismatch                        // 通知金额与订单金额不一致
	StorageError                          // 存储层故障
)

// Applier 结算协作方：将校验通过的支付通知落地为订单已支付
type Applier interface {
	Apply(ctx context.Context, tradeChannel, orderNo, bankTrxNo, amount string) ApplyResult
}

// DBApplier 基于数据库条件更新的结算实现
// 同一订单的并发重复通知由 MarkPaid 的 status 条件保证最多一次生效；
// redis 仅作重放快速路径，不参与正确性。
type DBApplier struct {
	dao   *dao.PaymentDao
	redis *redis.Client
	pub   event.Publisher
}

func NewDBApplier(paymentDao *dao.PaymentDao, rdb *redis.Client, pub event.Publisher) *DBApplier {
	return &DBApplier{dao: paymentDao, redis: rdb, pub: pub}
}

const appliedKeyTTL = 24 * time.Hour

func appliedKey(orderNo string) string { return "notify:applied:" + orderNo }

func (s *DBApplier) Apply(ctx context.Context, tradeChannel, orderNo, bankTrxNo, amount string) ApplyResult {
	// 重放快速路径，redis 故障直接走数据库
	if s.redis != nil {
		if n, err := s.redis.Exists(ctx, appliedKey(orderNo)).Result(); err == nil && n > 0 {
			log.Printf("[SETTLEMENT] 重复通知命中缓存, 订单号: %s", orderNo)
			return AlreadyApplied
		}
	}

	rec, err := s.dao.GetByOrderNo(ctx, orderNo)
	if err != nil {
		log.Printf("[SETTLEMENT] 查询支付记录失败, 订单号: %s, err: %v", orderNo, err)
		return StorageError
	}
	if rec == nil {
		log.Printf("[SETTLEMENT] 支付记录不存在, 订单号: %s, 通道: %s", orderNo, tradeChannel)
		return NotFound
	}
	if !utils.AmountEqual(rec.Amount, amount) {
		log.Printf("[SETTLEMENT] 通知金额不一致, 订单号: %s, 订单金额: %s, 通知金额: %s", orderNo, rec.Amount, amount)
		return AmountMismatch
	}

	rows, err := s.dao.MarkPaid(ctx, orderNo, bankTrxNo)
	if err != nil {
		log.Printf("[SETTLEMENT] 更新支付状态失败, 订单号: %s, err: %v", orderNo, err)
		return StorageError
	}
	if rows == 0 {
		// 条件更新未命中：并发通知已完成过渡，或记录不在待支付状态
		cur, err := s.dao.GetByOrderNo(ctx, orderNo)
		if err != nil || cur == nil {
			return StorageError
		}
		if cur.Status == model.PaymentStatusPaid {
			return AlreadyApplied
		}
		log.Printf("[SETTLEMENT] 订单非待支付状态, 订单号: %s, status: %d", orderNo, cur.Status)
		return StorageError
	}

	s.markApplied(ctx, orderNo)
	s.publishPaid(tradeChannel, orderNo, bankTrxNo, amount)
	log.Printf("[SETTLEMENT] 订单结算完成, 订单号: %s, 银行流水号: %s, 金额: %s", orderNo, bankTrxNo, amount)
	return Applied
}

func (s *DBApplier) markApplied(ctx context.Context, orderNo string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, appliedKey(orderNo), 1, appliedKeyTTL).Err(); err != nil {
		log.Printf("[SETTLEMENT] 重放缓存写入失败, 订单号: %s, err: %v", orderNo, err)
	}
}

func (s *DBApplier) publishPaid(tradeChannel, orderNo, bankTrxNo, amount string) {
	if s.pub == nil {
		return
	}
	evt := dto.PaymentPaidEvent{
		OrderNo:      orderNo,
		TradeChannel: tradeChannel,
		BankTrxNo:    bankTrxNo,
		Amount:       amount,
		PaidAt:       time.Now().Unix(),
	}
	if err := s.pub.Publish("payment.paid", evt); err != nil {
		log.Printf("[SETTLEMENT] 支付完成事件投递失败, 订单号: %s, err: %v", orderNo, err)
	}
}
