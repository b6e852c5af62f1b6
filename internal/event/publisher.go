package event

// Publisher 事件发布接口，结算成功后投递支付完成事件
type Publisher interface {
	Publish(topic string, msg any) error
}
