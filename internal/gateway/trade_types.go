package gateway

// 汇聚支付交易类型编码表：平台支付方式 -> 网关 FrpCode
// 未注册的支付方式属于配置错误，下单时立即报错。
var frpCodes = map[string]string{
	"wechat":      "WEIXIN_GZH",    // 微信公众号支付
	"wechat_xcx":  "WEIXIN_XCX",    // 微信小程序支付
	"wechat_scan": "WEIXIN_NATIVE", // 微信扫码支付
	"wechat_wap":  "WEIXIN_H5",     // 微信H5支付
	"alipay_scan": "ALIPAY_SAOMA",  // 支付宝扫码支付
	"alipay_wap":  "ALIPAY_H5",     // 支付宝H5支付
}

// ResolveFrpCode 解析支付方式对应的网关交易编码
func ResolveFrpCode(payType string) (string, bool) {
	code, ok := frpCodes[payType]
	return code, ok
}

// TradeParam 组合回调场景参数：支付方式-通道编码
func TradeParam(payType, channelCode string) string {
	return payType + "-" + channelCode
}
