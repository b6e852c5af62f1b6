package service

import (
	"context"
	"log"
	"time"

	"joinpay-order-api/internal/constant"
	"joinpay-order-api/internal/dao"
	"joinpay-order-api/internal/dto"
	"joinpay-order-api/internal/gateway"
	"joinpay-order-api/internal/idgen"
	"joinpay-order-api/internal/model"
	"joinpay-order-api/internal/utils"
)

// PendingStore gorm 实现：网关受理成功后落一条待支付记录
type PendingStore struct {
	dao *dao.PaymentDao
}

func NewPendingStore(paymentDao *dao.PaymentDao) *PendingStore {
	return &PendingStore{dao: paymentDao}
}

func (s *PendingStore) CreatePending(ctx context.Context, rec gateway.PendingPayment) error {
	now := time.Now()
	return s.dao.Insert(ctx, &model.PaymentRecord{
		PaymentID:    idgen.New(),
		OrderNo:      rec.OrderNo,
		TradeChannel: rec.TradeChannel,
		Amount:       rec.Amount,
		Status:       model.PaymentStatusPending,
		Title:        rec.Title,
		OpenID:       rec.OpenID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// PayService 下单/查单编排
type PayService struct {
	client *gateway.Client
	dao    *dao.PaymentDao
}

func NewPayService(client *gateway.Client, paymentDao *dao.PaymentDao) *PayService {
	return &PayService{client: client, dao: paymentDao}
}

// Create 创建网关支付订单
func (s *PayService) Create(ctx context.Context, req dto.CreatePayReq) (*dto.CreatePayResp, error) {
	fen, err := utils.YuanToFen(req.Amount)
	if err != nil {
		log.Printf("[PAY] 金额非法, 订单号: %s, amount: %s, err: %v", req.OrderNo, req.Amount, err)
		return nil, constant.NewError(constant.CodeOrderAmountInvalid)
	}

	// 同单号重复下单直接拒绝
	existing, err := s.dao.GetByOrderNo(ctx, req.OrderNo)
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	if existing != nil {
		return nil, constant.NewError(constant.CodeOrderAlreadyExist)
	}

	payParams, err := s.client.CreateOrder(ctx, gateway.CreateOrderReq{
		OpenID:      req.OpenID,
		OrderNo:     req.OrderNo,
		AmountYuan:  req.Amount,
		AmountFen:   fen,
		Title:       req.Title,
		Description: req.Description,
		PayType:     req.PayType,
		ChannelCode: req.ChannelCode,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePayResp{
		OrderNo:   req.OrderNo,
		PayParams: payParams,
	}, nil
}

// Query 查询订单：本地记录与网关查单一并返回
func (s *PayService) Query(ctx context.Context, orderNo string) (*dto.QueryPayResp, error) {
	rec, err := s.dao.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	if rec == nil {
		return nil, constant.NewError(constant.CodeOrderNotFound)
	}

	gwResult, err := s.client.QueryOrder(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	resp := &dto.QueryPayResp{
		OrderNo:       rec.OrderNo,
		Status:        rec.Status,
		Amount:        rec.Amount,
		TradeChannel:  rec.TradeChannel,
		BankTrxNo:     rec.BankTrxNo,
		GatewayResult: gwResult,
	}
	return resp, nil
}
