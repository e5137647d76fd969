package config

// FixtureConfig 控制启动时作者池的生成方式以及帖子 ID 的风格。
type FixtureConfig struct {
	// Mode: "static" 使用内置的 12 位作者; "random" 使用 Seed 生成 AuthorCount 位作者。
	Mode        string `mapstructure:"mode" json:"mode" yaml:"mode"`
	Seed        int64  `mapstructure:"seed" json:"seed" yaml:"seed"`
	AuthorCount int    `mapstructure:"authorCount" json:"authorCount" yaml:"authorCount"`

	// PostIDStyle: "uuid" => post-<uuid>; "slug" => post-<标题slug>-<8位随机>
	PostIDStyle string `mapstructure:"postIdStyle" json:"postIdStyle" yaml:"postIdStyle"`

	// RichContent 为 true 时，后台生成的帖子正文会追加一段 gofakeit 随机段落。
	RichContent bool `mapstructure:"richContent" json:"richContent" yaml:"richContent"`
}
