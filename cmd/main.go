package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"joinpay-order-api/internal/callback"
	"joinpay-order-api/internal/config"
	"joinpay-order-api/internal/dal"
	"joinpay-order-api/internal/dao"
	"joinpay-order-api/internal/gateway"
	"joinpay-order-api/internal/handler"
	"joinpay-order-api/internal/idgen"
	"joinpay-order-api/internal/logger"
	"joinpay-order-api/internal/middleware"
	"joinpay-order-api/internal/mq"
	"joinpay-order-api/internal/service"
	"joinpay-order-api/internal/settlement"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitDB()
	dal.InitRedis()
	dal.InitRabbitMQ()
	logger.Init()
	idgen.Init()

	// start consumers
	go mq.StartConsumers()

	// wiring
	jp := config.C.JoinPay
	gwCfg := gateway.Config{
		AppID:           jp.AppID,
		TradeMerchantNo: jp.TradeMerchantNo,
		MerchantNo:      jp.MerchantNo,
		MerchantKey:     jp.MerchantKey,
		PayAPIURL:       jp.PayAPIURL,
		QueryAPIURL:     jp.QueryAPIURL,
		NotifyBaseURL:   jp.NotifyBaseURL,
	}
	paymentDao := dao.NewPaymentDao(dal.DB)
	transport := gateway.NewHTTPTransport(time.Duration(jp.TimeoutSec) * time.Second)
	client := gateway.NewClient(gwCfg, transport, service.NewPendingStore(paymentDao))
	paySvc := service.NewPayService(client, paymentDao)
	applier := settlement.NewDBApplier(paymentDao, dal.RedisClient, mq.NewPublisher())
	verifier := callback.NewVerifier(jp.MerchantKey, applier)

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "192.168.0.0/16"})
	r.Use(middleware.Recover(), middleware.RequestLog())

	ph := handler.NewPayHandler(paySvc)
	nh := handler.NewNotifyHandler(verifier)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/pay/create", middleware.AuthHMAC(), ph.Create)
		v1.GET("/pay/query/:orderNo", ph.Query)
	}
	// 网关通知以 GET 携带参数为主，个别通道走表单 POST
	r.GET("/api/v1/notify/joinpay/:tradeParam", nh.JoinPay)
	r.POST("/api/v1/notify/joinpay/:tradeParam", nh.JoinPay)

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
