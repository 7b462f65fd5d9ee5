// File: cmd/service/main.go
// @title        GoCart API
// @version      1.0
// @description  這是 GoCart 電商後端的 API 文件
// @host         localhost:8080
// @BasePath     /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gocart/internal/cache"
	"gocart/internal/database"
	"gocart/internal/events"
	"gocart/internal/mailer"
	"gocart/internal/notify"
	"gocart/internal/router"
	"gocart/internal/service"
	"gocart/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "gocart/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool       = database.NewPgxPool
	newRedisClient   = cache.NewRedisClient
	runMigrationsFn  = database.RunMigrations
	newNATSPublisher = func(url string) (events.Publisher, error) { return events.NewNATSPublisher(url) }
	startServer      = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool    = worker.NewPool
	exitFunc         = os.Exit
)

const defaultTokenTTL = 168 * time.Hour

func run() error {
	// .env 存在時載入，不存在不視為錯誤
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	tokenTTL := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("無效的 TOKEN_TTL: %v", err)
		}
		tokenTTL = d
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	// 令牌簽章設定於啟動時建構一次，之後唯讀
	tokens, err := service.NewTokenService(jwtSecret, tokenTTL)
	if err != nil {
		return fmt.Errorf("TokenService 初始化失敗: %v", err)
	}

	// NATS 未設定時改用 no-op publisher
	var pub events.Publisher = events.NoopPublisher{}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		pub, err = newNATSPublisher(natsURL)
		if err != nil {
			return fmt.Errorf("NATS 連線失敗: %v", err)
		}
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Printf("關閉 NATS 連線失敗: %v", err)
		}
	}()

	// MailerSend 未設定時改用 dev mailer
	var m mailer.Mailer = mailer.NewDevMailer()
	if apiKey := os.Getenv("MAILERSEND_API_KEY"); apiKey != "" {
		m = mailer.NewMailerSend(apiKey, os.Getenv("MAIL_FROM_NAME"), os.Getenv("MAIL_FROM_EMAIL"))
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, tokens, notify.New(wp, pub, m))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
