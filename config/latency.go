package config

// LatencyProfile 描述一类请求的模拟延迟 (毫秒)。
// 实际延迟 = BaseMs + PerPostMs*帖子总数 + (U[0,1)-0.5)*JitterMs，最小为 0。
type LatencyProfile struct {
	BaseMs    int `mapstructure:"baseMs" json:"baseMs" yaml:"baseMs"`
	PerPostMs int `mapstructure:"perPostMs" json:"perPostMs" yaml:"perPostMs"`
	JitterMs  int `mapstructure:"jitterMs" json:"jitterMs" yaml:"jitterMs"`
}

// LatencyConfig 每个请求类别的延迟配置。未配置的类别使用 latency 包中的默认值。
type LatencyConfig struct {
	Enabled  bool                      `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Profiles map[string]LatencyProfile `mapstructure:"profiles" json:"profiles" yaml:"profiles"`
}
