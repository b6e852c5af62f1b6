package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"joinpay-order-api/internal/constant"
	"joinpay-order-api/internal/dao"
	"joinpay-order-api/internal/dto"
	"joinpay-order-api/internal/gateway"
)

type stubTransport struct {
	resp  []byte
	calls int
}

func (s *stubTransport) Post(_ context.Context, _ string, _ map[string]string) ([]byte, error) {
	s.calls++
	return s.resp, nil
}

var svcGwCfg = gateway.Config{
	AppID:           "JP10000001",
	TradeMerchantNo: "888100000001234",
	MerchantNo:      "888104500000000",
	MerchantKey:     "test-key",
	PayAPIURL:       "https://gw.test/uniPayApi.action",
	QueryAPIURL:     "https://gw.test/queryOrder.action",
	NotifyBaseURL:   "https://pay.test/api/v1/notify/joinpay",
}

func newTestService(t *testing.T, tr gateway.Transport) (*PayService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	paymentDao := dao.NewPaymentDao(gdb)
	client := gateway.NewClient(svcGwCfg, tr, NewPendingStore(paymentDao))
	return NewPayService(client, paymentDao), mock
}

func createReq() dto.CreatePayReq {
	return dto.CreatePayReq{
		OrderNo:     "T1",
		Amount:      "10.00",
		Title:       "X",
		PayType:     "wechat_scan",
		ChannelCode: "joinpay",
	}
}

func TestCreateAcceptedWritesPendingRecord(t *testing.T) {
	tr := &stubTransport{resp: []byte(`{"ra_Code":100,"rc_Result":"{\"payUrl\":\"weixin://pay\"}"}`)}
	svc, mock := newTestService(t, tr)

	mock.ExpectQuery("^SELECT .+ FROM `p_payment`").WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))
	mock.ExpectExec("^INSERT INTO `p_payment`").WillReturnResult(sqlmock.NewResult(1, 1))

	resp, err := svc.Create(context.Background(), createReq())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if resp.PayParams["payUrl"] != "weixin://pay" {
		t.Errorf("pay params not surfaced: %v", resp.PayParams)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly one pending insert: %v", err)
	}
}

func TestCreateRejectedLeavesNoRecord(t *testing.T) {
	tr := &stubTransport{resp: []byte(`{"rb_CodeMsg":"insufficient config"}`)}
	svc, mock := newTestService(t, tr)

	mock.ExpectQuery("^SELECT .+ FROM `p_payment`").WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))

	_, err := svc.Create(context.Background(), createReq())
	if !gateway.IsKind(err, gateway.KindRejected) {
		t.Fatalf("expected gateway rejection, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rejected order must not touch storage: %v", err)
	}
}

func TestCreateInvalidAmount(t *testing.T) {
	tr := &stubTransport{}
	svc, _ := newTestService(t, tr)

	req := createReq()
	req.Amount = "10.005"
	_, err := svc.Create(context.Background(), req)
	var bizErr constant.Error
	if !errors.As(err, &bizErr) || bizErr.Code() != constant.CodeOrderAmountInvalid {
		t.Fatalf("expected amount error, got %v", err)
	}
	if tr.calls != 0 {
		t.Errorf("invalid amount must not reach the gateway")
	}
}

func TestCreateDuplicateOrderNo(t *testing.T) {
	tr := &stubTransport{}
	svc, mock := newTestService(t, tr)

	mock.ExpectQuery("^SELECT .+ FROM `p_payment`").WillReturnRows(
		sqlmock.NewRows([]string{"payment_id", "order_no", "status"}).AddRow(1001, "T1", 1))

	_, err := svc.Create(context.Background(), createReq())
	var bizErr constant.Error
	if !errors.As(err, &bizErr) || bizErr.Code() != constant.CodeOrderAlreadyExist {
		t.Fatalf("expected duplicate order error, got %v", err)
	}
	if tr.calls != 0 {
		t.Errorf("duplicate order must not reach the gateway")
	}
}
