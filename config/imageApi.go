package config

// ImageAPIConfig 外部随机图片 API (dog.ceo) 的配置。
// Enabled 为 false 时使用离线的 gofakeit 图片地址，不发起任何出站请求。
type ImageAPIConfig struct {
	Enabled        bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	URL            string `mapstructure:"url" json:"url" yaml:"url"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
