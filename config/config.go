package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper的好处在于支持配置文件的热更新 同时viper对于大小写并不敏感 都是统一进行处理
// Init loads config.yml (if any) plus VIDTUBE_* environment overrides into ConfigInfo.
func Init() error {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	if p := os.Getenv("VIDTUBE_CONFIG_PATH"); p != "" {
		configPaths = append([]string{p}, configPaths...)
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	return load(v)
}

// InitFromFile loads one explicit file; tests and tooling use it.
func InitFromFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) error {
	setDefaults(v)
	v.SetEnvPrefix("VIDTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults and environment: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
			return err
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}

	// 手动从viper获取配置值，避免Unmarshal问题
	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.MaxRequestBodyMB = v.GetInt("server.max_request_body_mb")
	ConfigInfo.Server.TempDir = v.GetString("server.temp_dir")
	ConfigInfo.Server.AllowOrigins = v.GetStringSlice("server.allow_origins")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")
	ConfigInfo.Mysql.MaxOpenConns = v.GetInt("mysql.max_open_conns")
	ConfigInfo.Mysql.MaxIdleConns = v.GetInt("mysql.max_idle_conns")
	ConfigInfo.Mysql.ConnMaxLifetime = v.GetDuration("mysql.conn_max_lifetime")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")
	ConfigInfo.Redis.CacheTTL = v.GetDuration("redis.cache_ttl")
	ConfigInfo.Redis.LockTTL = v.GetDuration("redis.lock_ttl")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Region = v.GetString("minio.region")
	ConfigInfo.Minio.PublicBaseURL = v.GetString("minio.public_base_url")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Jwt.Secret = v.GetString("jwt.secret")
	ConfigInfo.Jwt.IdentityKey = v.GetString("jwt.identity_key")
	ConfigInfo.Jwt.Realm = v.GetString("jwt.realm")

	ConfigInfo.Jaeger.AgentAddr = v.GetString("jaeger.agent_addr")
	ConfigInfo.Jaeger.ServiceName = v.GetString("jaeger.service_name")

	ConfigInfo.Flow.QPS = v.GetFloat64("flow.qps")
	ConfigInfo.Pprof.Addr = v.GetString("pprof.addr")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured, every authenticated route will reject requests")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8888")
	v.SetDefault("server.max_request_body_mb", 512)
	v.SetDefault("server.temp_dir", "./public/temp")
	v.SetDefault("server.allow_origins", []string{"http://localhost:8870", "http://localhost:8888"})

	v.SetDefault("mysql.addr", "localhost:3306")
	v.SetDefault("mysql.database", "vidtube")
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.max_open_conns", 50)
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)
	v.SetDefault("redis.lock_ttl", 5*time.Second)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.region", "us-east-1")

	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetDefault("jwt.identity_key", "user_id")
	v.SetDefault("jwt.realm", "vidtube")

	v.SetDefault("jaeger.service_name", "vidtube-api")
	v.SetDefault("flow.qps", 200)
}
