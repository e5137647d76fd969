package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_mock_service/config"
	"github.com/Xushengqwer/blog_mock_service/models/entities"
)

// 事件来源
const (
	SourceAPI       = "api"
	SourcePopulator = "populator"
)

// PostCreatedEvent 帖子创建事件
type PostCreatedEvent struct {
	EventID   string         `json:"eventId"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"` // api | populator
	Post      *entities.Post `json:"post"`
}

// messageWriter 抽象 kafka.Writer 的写入能力，便于测试替换。
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题，key 用于分区。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// PublishPostCreated 发送帖子创建事件，以作者 ID 作为消息 key。
func (p *KafkaProducer) PublishPostCreated(ctx context.Context, source string, post *entities.Post) error {
	event := PostCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Source:    source,
		Post:      post,
	}
	return p.SendEvent(ctx, p.topics.PostCreated, post.AuthorID, event)
}

// Close 关闭底层 writer，刷新未发送的消息。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// PostEventPublisher 是帖子创建事件的发布接口，KafkaProducer 实现了它。
type PostEventPublisher interface {
	PublishPostCreated(ctx context.Context, source string, post *entities.Post) error
}

// PublishAsync 在后台 goroutine 中发布帖子创建事件，失败只记录日志。publisher 为 nil 时什么也不做。
func PublishAsync(publisher PostEventPublisher, logger *zap.Logger, source string, post *entities.Post) {
	if publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := publisher.PublishPostCreated(ctx, source, post); err != nil {
			logger.Warn("发送帖子创建事件失败", zap.String("postID", post.ID), zap.String("source", source), zap.Error(err))
		}
	}()
}
