package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"

	health "vidtube.com/cmd/api/handlers/health"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/router"
	"vidtube.com/cmd/api/router/authfunc"
	interactiondb "vidtube.com/cmd/interaction/dal/db"
	likelock "vidtube.com/cmd/interaction/infras/redis"
	videodb "vidtube.com/cmd/video/dal/db"
	videocache "vidtube.com/cmd/video/infras/redis"
	videoservice "vidtube.com/cmd/video/service"
	"vidtube.com/config"
	"vidtube.com/config/jaeger"
	"vidtube.com/config/pprof"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/middleware"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/response"
)

func Init() {
	if err := config.Init(); err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	cfg := config.ConfigInfo
	pprof.Load(cfg.Pprof.Addr)

	gdb, err := database.Open(cfg.Mysql.DSN(), database.PoolConfig{
		MaxOpenConns:    cfg.Mysql.MaxOpenConns,
		MaxIdleConns:    cfg.Mysql.MaxIdleConns,
		ConnMaxLifetime: cfg.Mysql.ConnMaxLifetime,
	})
	if err != nil {
		logrus.Fatalf("open mysql: %v", err)
	}
	interactiondb.Init(gdb)
	videodb.Init(gdb)

	rdb, err := cache.NewClient(context.Background(), cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// 缓存和锁都是可选的，连不上就降级运行
		logrus.Warnf("redis unavailable, running without cache and like locks: %v", err)
		rdb = nil
	}
	videocache.Load(rdb, cfg.Redis.CacheTTL)
	likelock.Load(rdb, cfg.Redis.LockTTL)
	health.Init(gdb, rdb)

	ossCfg := oss.Config{
		Endpoint:      cfg.Minio.Endpoint,
		AccessKey:     cfg.Minio.AccessKey,
		SecretKey:     cfg.Minio.SecretKey,
		UseSSL:        cfg.Minio.UseSSL,
		Region:        cfg.Minio.Region,
		PublicBaseURL: cfg.Minio.PublicBaseURL,
	}
	minioClient, err := oss.InitMinio(ossCfg)
	if err != nil {
		logrus.Errorf("minio unavailable, uploads will fail: %v", err)
	} else {
		videoservice.InitUploader(oss.NewUploader(minioClient, ossCfg))
	}
	if err := video.InitUpload(cfg.Server.TempDir); err != nil {
		logrus.Fatalf("prepare temp dir: %v", err)
	}

	var publisher mq.Publisher = mq.NopPublisher{}
	if url := cfg.RabbitMq.URL(); url != "" {
		producer, err := mq.NewProducer(url)
		if err != nil {
			logrus.Warnf("rabbitmq unavailable, domain events disabled: %v", err)
		} else {
			publisher = producer
		}
	}
	mq.Init(publisher)

	if err := jwt.AccessTokenJwtInit(jwt.Config{
		Secret:   cfg.Jwt.Secret,
		Realm:    cfg.Jwt.Realm,
		ClaimKey: cfg.Jwt.IdentityKey,
	}); err != nil {
		logrus.Fatalf("init jwt: %v", err)
	}

	if err := middleware.InitFlow(cfg.Flow.QPS, router.APIResource); err != nil {
		logrus.Warnf("sentinel flow control disabled: %v", err)
	}
}

func main() {
	Init()
	cfg := config.ConfigInfo

	closer, err := jaeger.InitTracer(cfg.Jaeger.ServiceName, cfg.Jaeger.AgentAddr)
	if err != nil {
		logrus.Warnf("init tracer: %v", err)
	} else {
		defer closer.Close()
	}

	r := server.New(
		server.WithHostPorts(cfg.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodyMB*1024*1024),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			response.SendError(ctx, c, errno.ServiceErr.WithMessage("Internal server error"))
		})))

	// 注册路由
	router.Register(r, authfunc.Auth()...)

	r.Spin()
}
