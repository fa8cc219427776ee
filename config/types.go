package config

import (
	"fmt"
	"time"
)

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Flow     flow     `yaml:"flow" mapstructure:"flow"`
	Pprof    pprof    `yaml:"pprof" mapstructure:"pprof"`
}

type server struct {
	Addr             string   `yaml:"addr"`
	MaxRequestBodyMB int      `yaml:"max_request_body_mb" mapstructure:"max_request_body_mb"`
	TempDir          string   `yaml:"temp_dir" mapstructure:"temp_dir"`
	AllowOrigins     []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`

	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
}

// DSN builds the go-sql-driver dsn gorm opens.
func (m mysql) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		m.Username, m.Password, m.Addr, m.Database, m.Charset)
}

type redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	LockTTL  time.Duration `yaml:"lock_ttl" mapstructure:"lock_ttl"`
}

type minio struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey     string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL        bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	Region        string `yaml:"region"`
	PublicBaseURL string `yaml:"public_base_url" mapstructure:"public_base_url"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// URL is empty when no broker is configured.
func (r rabbitmq) URL() string {
	if r.Addr == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s/", r.Username, r.Password, r.Addr)
}

type jwt struct {
	Secret      string `yaml:"secret"`
	IdentityKey string `yaml:"identity_key" mapstructure:"identity_key"`
	Realm       string `yaml:"realm"`
}

type jaeger struct {
	AgentAddr   string `yaml:"agent_addr" mapstructure:"agent_addr"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

type flow struct {
	QPS float64 `yaml:"qps"`
}

type pprof struct {
	Addr string `yaml:"addr"`
}
