package utils

import "testing"

func TestGenerateSignSymmetry(t *testing.T) {
	params := map[string]string{
		"p1_MerchantNo":  "888104500000000",
		"p2_OrderNo":     "T20250828001",
		"p3_Amount":      "1000",
		"p5_ProductName": "测试商品",
	}
	params["hmac"] = GenerateSign(params, "secret")
	if !VerifySign(params, "secret") {
		t.Errorf("sign/verify not symmetric")
	}
	if VerifySign(params, "other-secret") {
		t.Errorf("verify passed with wrong secret")
	}
}

func TestGenerateSignExcludesHmac(t *testing.T) {
	params := map[string]string{"a": "1", "b": "2"}
	want := GenerateSign(params, "k")
	params["hmac"] = "whatever"
	if got := GenerateSign(params, "k"); got != want {
		t.Errorf("hmac field leaked into digest: %s != %s", got, want)
	}
}

func TestGenerateSignFieldSensitivity(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2", "c": "3"}
	baseSign := GenerateSign(base, "k")
	for k := range base {
		mutated := map[string]string{}
		for kk, vv := range base {
			mutated[kk] = vv
		}
		mutated[k] += "x"
		if GenerateSign(mutated, "k") == baseSign {
			t.Errorf("mutating field %s did not change digest", k)
		}
	}
	// 缺失键与存在键不同
	delete(base, "c")
	if GenerateSign(base, "k") == baseSign {
		t.Errorf("dropping a field did not change digest")
	}
}

func TestVerifySignMissingHmac(t *testing.T) {
	params := map[string]string{"a": "1"}
	if VerifySign(params, "k") {
		t.Errorf("verify passed without hmac field")
	}
}

func TestVerifySignCaseInsensitive(t *testing.T) {
	params := map[string]string{"a": "1"}
	sign := GenerateSign(params, "k")
	params["hmac"] = "" // placeholder
	for _, v := range []string{sign, upper(sign)} {
		params["hmac"] = v
		if !VerifySign(params, "k") {
			t.Errorf("verify failed for hmac %q", v)
		}
	}
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'f' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
