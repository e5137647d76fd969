package config

import "github.com/Xushengqwer/go-common/config"

// MockConfig 是 blog mock 服务的完整配置，由 core.LoadConfig 从 YAML 文件 (及环境变量) 加载。
type MockConfig struct {
	ZapConfig       config.ZapConfig    `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	ServerConfig    config.ServerConfig `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig    config.TracerConfig `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	CORSConfig      CORSConfig          `mapstructure:"corsConfig" json:"corsConfig" yaml:"corsConfig"`
	FixtureConfig   FixtureConfig       `mapstructure:"fixtureConfig" json:"fixtureConfig" yaml:"fixtureConfig"`
	LatencyConfig   LatencyConfig       `mapstructure:"latencyConfig" json:"latencyConfig" yaml:"latencyConfig"`
	PopulatorConfig PopulatorConfig     `mapstructure:"populatorConfig" json:"populatorConfig" yaml:"populatorConfig"`
	ImageAPIConfig  ImageAPIConfig      `mapstructure:"imageApiConfig" json:"imageApiConfig" yaml:"imageApiConfig"`
	KafkaConfig     KafkaConfig         `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	StatsCronSpec   string              `mapstructure:"statsCronSpec" json:"statsCronSpec" yaml:"statsCronSpec"`
}

// CORSConfig 浏览器前端跨域访问配置。
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins" json:"allowedOrigins" yaml:"allowedOrigins"`
}
