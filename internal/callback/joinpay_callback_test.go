package callback

import (
	"context"
	"net/url"
	"testing"

	"joinpay-order-api/internal/settlement"
	"joinpay-order-api/internal/utils"
)

const testSecret = "test-key"

type applyCall struct {
	tradeChannel, orderNo, bankTrxNo, amount string
}

type fakeApplier struct {
	result settlement.ApplyResult
	calls  []applyCall
}

func (f *fakeApplier) Apply(_ context.Context, tradeChannel, orderNo, bankTrxNo, amount string) settlement.ApplyResult {
	f.calls = append(f.calls, applyCall{tradeChannel, orderNo, bankTrxNo, amount})
	return f.result
}

// signedNotify 构造一条已签名的成功通知
func signedNotify(status string) map[string]string {
	params := map[string]string{
		"r1_MerchantNo": "888104500000000",
		"r2_OrderNo":    "T1",
		"r3_Amount":     "10.00",
		"r6_Status":     status,
		"r9_BankTrxNo":  "100220250828000001",
	}
	params["hmac"] = utils.GenerateSign(params, testSecret)
	return params
}

func TestVerifyAccepted(t *testing.T) {
	applier := &fakeApplier{result: settlement.Applied}
	v := NewVerifier(testSecret, applier)

	outcome := v.Verify(context.Background(), signedNotify("100"), "wechat_scan-joinpay")
	if outcome != OutcomeAccepted || outcome.Token() != "success" {
		t.Fatalf("expected accepted/success, got %v/%s", outcome, outcome.Token())
	}
	if len(applier.calls) != 1 {
		t.Fatalf("expected one apply call, got %d", len(applier.calls))
	}
	call := applier.calls[0]
	if call.tradeChannel != "wechat_scan-joinpay" || call.orderNo != "T1" ||
		call.bankTrxNo != "100220250828000001" || call.amount != "10.00" {
		t.Errorf("apply args wrong: %+v", call)
	}
}

func TestVerifyAlreadyAppliedIsAccepted(t *testing.T) {
	applier := &fakeApplier{result: settlement.AlreadyApplied}
	v := NewVerifier(testSecret, applier)
	if outcome := v.Verify(context.Background(), signedNotify("100"), "wechat-joinpay"); outcome != OutcomeAccepted {
		t.Errorf("repeat notification must be a no-op success, got %v", outcome)
	}
}

func TestVerifyMissingHmac(t *testing.T) {
	applier := &fakeApplier{result: settlement.Applied}
	v := NewVerifier(testSecret, applier)

	params := signedNotify("100")
	delete(params, "hmac")
	outcome := v.Verify(context.Background(), params, "wechat-joinpay")
	if outcome != OutcomeBadSignature || outcome.Token() != "error" {
		t.Errorf("expected bad signature/error, got %v/%s", outcome, outcome.Token())
	}
	if len(applier.calls) != 0 {
		t.Errorf("unverified notification must not reach the applier")
	}
}

func TestVerifyTamperedField(t *testing.T) {
	applier := &fakeApplier{result: settlement.Applied}
	v := NewVerifier(testSecret, applier)

	for _, field := range []string{"r2_OrderNo", "r3_Amount", "r6_Status", "r9_BankTrxNo"} {
		params := signedNotify("100")
		params[field] += "9"
		if outcome := v.Verify(context.Background(), params, "wechat-joinpay"); outcome != OutcomeBadSignature {
			t.Errorf("tampered %s accepted: %v", field, outcome)
		}
	}
	if len(applier.calls) != 0 {
		t.Errorf("tampered notifications must not reach the applier")
	}
}

func TestVerifyNonSuccessStatusGating(t *testing.T) {
	applier := &fakeApplier{result: settlement.Applied}
	v := NewVerifier(testSecret, applier)

	for _, status := range []string{"101", "102", "0"} {
		outcome := v.Verify(context.Background(), signedNotify(status), "wechat-joinpay")
		if outcome != OutcomeAccepted || outcome.Token() != "success" {
			t.Errorf("status %s: expected success ack, got %v", status, outcome)
		}
	}
	if len(applier.calls) != 0 {
		t.Errorf("non-success status must never trigger settlement")
	}
}

func TestVerifyApplyHardFailure(t *testing.T) {
	for _, result := range []settlement.ApplyResult{settlement.NotFound, settlement.AmountMismatch, settlement.StorageError} {
		applier := &fakeApplier{result: result}
		v := NewVerifier(testSecret, applier)
		outcome := v.Verify(context.Background(), signedNotify("100"), "wechat-joinpay")
		if outcome != OutcomeApplyFailed || outcome.Token() != "error" {
			t.Errorf("apply result %v: expected error token, got %v/%s", result, outcome, outcome.Token())
		}
	}
}

func TestVerifyURLEncodedValues(t *testing.T) {
	applier := &fakeApplier{result: settlement.Applied}
	v := NewVerifier(testSecret, applier)

	// 签名针对解码后的值，传入报文为再编码形态
	decoded := map[string]string{
		"r2_OrderNo":   "T1",
		"r3_Amount":    "10.00",
		"r6_Status":    "100",
		"r9_BankTrxNo": "abc 001",
	}
	decoded["hmac"] = utils.GenerateSign(decoded, testSecret)
	encoded := make(map[string]string, len(decoded))
	for k, val := range decoded {
		encoded[k] = url.QueryEscape(val)
	}

	if outcome := v.Verify(context.Background(), encoded, "wechat-joinpay"); outcome != OutcomeAccepted {
		t.Fatalf("encoded notification rejected: %v", outcome)
	}
	if applier.calls[0].bankTrxNo != "abc 001" {
		t.Errorf("value not decoded before use: %q", applier.calls[0].bankTrxNo)
	}
}
