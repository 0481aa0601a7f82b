package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/career-compass-bot/internal/config"
	"github.com/aliskhannn/career-compass-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/career-compass-bot/internal/delivery/telegram"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/career-compass-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/career-compass-bot/internal/infra/rabbitmq"
	"github.com/aliskhannn/career-compass-bot/internal/infra/redis"
	"github.com/aliskhannn/career-compass-bot/internal/logger"
	"github.com/aliskhannn/career-compass-bot/internal/repository"
	"github.com/aliskhannn/career-compass-bot/internal/service"
	"github.com/aliskhannn/career-compass-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Static content.
	content, err := repository.NewContentRepository(cfg.DataDir)
	if err != nil {
		return err
	}

	// PostgreSQL.
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	transactor := postgres.NewTransactor(pool)
	userRepo := pgrepo.NewUserRepository(pool)
	bookmarkRepo := pgrepo.NewBookmarkRepository(pool)
	quizRepo := pgrepo.NewQuizRepository(pool)
	feedbackRepo := pgrepo.NewFeedbackRepository(pool)

	// Quiz progress lives in Redis when configured, in memory otherwise.
	var (
		progressStore service.QuizProgressStore
		sweeper       service.ProgressSweeper
	)
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		progressStore = redis.NewProgressStore(rdb, cfg.Quiz.ProgressTTL)
		lg.Info("quiz progress stored in redis")
	} else {
		memory := storage.NewQuizProgressStorage(cfg.Quiz.ProgressTTL)
		progressStore = memory
		sweeper = memory
	}

	var publisher service.FeedbackPublisher
	if cfg.RabbitMQ.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return err
		}
		defer func() { _ = p.Close() }()

		publisher = p
		lg.Info("feedback events published to rabbitmq", zap.String("exchange", cfg.RabbitMQ.Exchange))
	}

	withTx := func(ctx context.Context, fn func(ctx context.Context, repo service.FeedbackRepository) error) error {
		return transactor.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
			return fn(ctx, feedbackRepo.WithTx(tx))
		})
	}

	// Services.
	userService := service.NewUserService(userRepo, lg)
	catalogService := service.NewCatalogService(content)
	quizService := service.NewQuizService(content, progressStore, quizRepo, lg)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, content)
	feedbackService := service.NewFeedbackService(feedbackRepo, withTx, publisher, lg)

	var relay *service.FeedbackService
	if publisher != nil {
		relay = feedbackService
	}
	scheduler := service.NewScheduler(service.SchedulerConfig{
		FeedbackRelaySpec: cfg.Scheduler.FeedbackRelaySpec,
		FeedbackBatchSize: cfg.Scheduler.FeedbackBatchSize,
		ProgressSweepSpec: cfg.Scheduler.ProgressSweepSpec,
	}, relay, sweeper, lg)

	// Telegram.
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		catalogService,
		quizService,
		bookmarkService,
		feedbackService,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return scheduler.Run(ctx)
	})

	if cfg.HTTP.Enabled {
		api := httpapi.NewServer(cfg.HTTP.Addr, cfg.HTTP.ShutdownTimeout, lg, catalogService, quizService, feedbackService)
		g.Go(func() error {
			return api.Run(ctx)
		})
	}

	err = g.Wait()
	lg.Info("shutdown complete")
	return err
}

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Bắt đầu"},
	{Command: "profile", Description: "Chọn đối tượng"},
	{Command: "careers", Description: "Ngân hàng nghề nghiệp"},
	{Command: "media", Description: "Video và podcast"},
	{Command: "stories", Description: "Câu chuyện thành công"},
	{Command: "resources", Description: "Tài liệu và webinar"},
	{Command: "admissions", Description: "Thông tin tuyển sinh"},
	{Command: "quiz", Description: "Trắc nghiệm tính cách"},
	{Command: "result", Description: "Kết quả trắc nghiệm"},
	{Command: "bookmarks", Description: "Mục đã lưu"},
	{Command: "feedback", Description: "Gửi phản hồi"},
	{Command: "help", Description: "Trợ giúp"},
}
