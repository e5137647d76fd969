package config

// KafkaConfig 帖子创建事件的 Kafka 配置。Brokers 为空时不发送事件。
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	PostCreated string `mapstructure:"postCreated" yaml:"postCreated"` //  帖子创建主题
}
