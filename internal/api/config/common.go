package config

// Config 配置主体
type Config struct {
	Server                   ServerConfig             `mapstructure:"server"`
	DB                       DBConfig                 `mapstructure:"database"`
	Redis                    RedisConfig              `mapstructure:"redis"`
	Logstash                 LogstashConfig           `mapstructure:"logstash"`
	Kafka                    KafkaConfig              `mapstructure:"kafka"`
	KafkaInteractionConsumer KafkaInteractionConsumer `mapstructure:"kafka_interaction_consumer"`
	Recommend                RecommendConfig          `mapstructure:"recommend"`
	Trending                 TrendingConfig           `mapstructure:"trending"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志上报配置，Address 为空时仅输出到本地
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaInteractionConsumer 交互事件消费者配置（客户端 SDK 批量上报、离线导入）
type KafkaInteractionConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// RecommendConfig 推荐反馈配置
type RecommendConfig struct {
	// OutcomeWindowHours 曝光记录可回流行为的时间窗口，超窗视为未投放
	OutcomeWindowHours int    `mapstructure:"outcome_window_hours"`
	DefaultAlgorithm   string `mapstructure:"default_algorithm"`
	CandidateCount     int    `mapstructure:"candidate_count"`
}

// TrendingConfig 热点话题打分配置
type TrendingConfig struct {
	MentionWeight float64 `mapstructure:"mention_weight"`
	SearchWeight  float64 `mapstructure:"search_weight"`
	NewsWeight    float64 `mapstructure:"news_weight"`
	// 各计数的归一化基准，count/scale 超过 1 时截断为 1
	MentionScale float64 `mapstructure:"mention_scale"`
	SearchScale  float64 `mapstructure:"search_scale"`
	NewsScale    float64 `mapstructure:"news_scale"`
	// VelocityFloor 速度连续 DeactivateCycles 轮低于该值后话题下线
	VelocityFloor    float64 `mapstructure:"velocity_floor"`
	DeactivateCycles int     `mapstructure:"deactivate_cycles"`
}
