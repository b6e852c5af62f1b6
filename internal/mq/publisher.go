package mq

import (
	"encoding/json"
	"log"

	"joinpay-order-api/internal/dal"

	"github.com/streadway/amqp"
)

// Publisher 基于 RabbitMQ 的事件发布器，实现 event.Publisher
type Publisher struct{}

func NewPublisher() *Publisher { return &Publisher{} }

func (p *Publisher) Publish(topic string, msg any) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	err = dal.RabbitCh.Publish(
		"payment_events",
		topic,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", topic, err)
	}
	return err
}
