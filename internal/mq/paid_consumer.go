package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"joinpay-order-api/internal/dal"
	"joinpay-order-api/internal/dao"
	"joinpay-order-api/internal/dto"
	"joinpay-order-api/internal/model"
)

// StartConsumers 启动支付完成事件消费：为每笔已支付订单补写资金日志
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Printf("[MQ] channel 未初始化，跳过消费")
		return
	}
	msgs, err := dal.RabbitCh.Consume("payment_paid", "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume payment_paid failed: %v", err)
	}

	paymentDao := dao.NewPaymentDao(dal.DB)
	for d := range msgs {
		var evt dto.PaymentPaidEvent
		if err := json.Unmarshal(d.Body, &evt); err != nil {
			log.Printf("[MQ] 事件解析失败: %v, body: %s", err, string(d.Body))
			_ = d.Nack(false, false)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		entry := &model.MoneyLog{
			OrderNo:     evt.OrderNo,
			BankTrxNo:   evt.BankTrxNo,
			Money:       evt.Amount,
			Description: "汇聚支付收款",
			CreatedAt:   time.Now(),
		}
		if err := paymentDao.CreateMoneyLog(ctx, entry); err != nil {
			cancel()
			log.Printf("[MQ] 资金日志写入失败, 订单号: %s, err: %v", evt.OrderNo, err)
			_ = d.Nack(false, true)
			continue
		}
		cancel()
		_ = d.Ack(false)
	}
}
