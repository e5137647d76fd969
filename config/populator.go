package config

// PopulatorConfig 后台帖子生成循环的配置。
type PopulatorConfig struct {
	Enabled  bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	MaxPosts int  `mapstructure:"maxPosts" json:"maxPosts" yaml:"maxPosts"`

	// 前 BackfillCount 篇为"回填"帖子: 等待时间更短，创建时间落在过去 BackfillSpanHours 小时内。
	BackfillCount     int `mapstructure:"backfillCount" json:"backfillCount" yaml:"backfillCount"`
	BackfillMaxWaitMs int `mapstructure:"backfillMaxWaitMs" json:"backfillMaxWaitMs" yaml:"backfillMaxWaitMs"`
	BackfillSpanHours int `mapstructure:"backfillSpanHours" json:"backfillSpanHours" yaml:"backfillSpanHours"`

	// 之后的"实时"帖子等待 U[0, LiveMaxWaitMs)，创建时间为当前时间。
	LiveMaxWaitMs int `mapstructure:"liveMaxWaitMs" json:"liveMaxWaitMs" yaml:"liveMaxWaitMs"`

	MinImages int `mapstructure:"minImages" json:"minImages" yaml:"minImages"`
	MaxImages int `mapstructure:"maxImages" json:"maxImages" yaml:"maxImages"`
}
