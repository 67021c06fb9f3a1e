package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Stock    StockConfig    `mapstructure:"stock"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	// File SQLite 数据库文件路径
	File string `mapstructure:"file"`
}

type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	Issuer         string `mapstructure:"issuer"`
	AccessTTLHours int    `mapstructure:"access_ttl_hours"`
}

type StockConfig struct {
	// MonitorEnabled 是否启动低库存巡检任务
	MonitorEnabled bool `mapstructure:"monitor_enabled"`
	// MonitorCron 巡检周期（带秒的 cron 表达式）
	MonitorCron string `mapstructure:"monitor_cron"`
	// LowThreshold 低于该数量的商品会被记进告警日志
	LowThreshold int `mapstructure:"low_threshold"`
}

// LoadConfig 读取配置文件
// 找不到 config.yaml 时全部走默认值，方便本地直接起服务
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.file", "store_management.db")
	viper.SetDefault("jwt.secret", "store-mgmt-secret-key-change-in-production")
	viper.SetDefault("jwt.issuer", "store-mgmt")
	viper.SetDefault("jwt.access_ttl_hours", 2)
	viper.SetDefault("stock.monitor_enabled", true)
	viper.SetDefault("stock.monitor_cron", "0 0 * * * *")
	viper.SetDefault("stock.low_threshold", 30)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("未找到 config.yaml，使用默认配置")
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
