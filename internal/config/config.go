package config

import (
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	HMACSecret string `mapstructure:"hmacSecret"`
}

// JoinPayCfg 汇聚支付网关配置
type JoinPayCfg struct {
	AppID           string `mapstructure:"appId"`           // 应用编号
	TradeMerchantNo string `mapstructure:"tradeMerchantNo"` // 报备商户号
	MerchantNo      string `mapstructure:"merchantNo"`      // 平台商户号
	MerchantKey     string `mapstructure:"merchantKey"`     // 平台商户密钥
	PayAPIURL       string `mapstructure:"payApiUrl"`
	QueryAPIURL     string `mapstructure:"queryApiUrl"`
	NotifyBaseURL   string `mapstructure:"notifyBaseUrl"`
	TimeoutSec      int    `mapstructure:"timeoutSec"`
}

type Root struct {
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Redis    RedisCfg    `mapstructure:"redis"`
	Security SecurityCfg `mapstructure:"security"`
	JoinPay  JoinPayCfg  `mapstructure:"joinpay"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	// .env 可覆盖本地敏感配置
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.JoinPay.TimeoutSec <= 0 {
		C.JoinPay.TimeoutSec = 10
	}
	if strings.TrimSpace(C.JoinPay.PayAPIURL) == "" {
		C.JoinPay.PayAPIURL = "https://www.joinpay.com/trade/uniPayApi.action"
	}
	if strings.TrimSpace(C.JoinPay.QueryAPIURL) == "" {
		C.JoinPay.QueryAPIURL = "https://www.joinpay.com/trade/queryOrder.action"
	}
}
