package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tonimnim/Komiut-sub007/config"
	"github.com/tonimnim/Komiut-sub007/internal/database"
	"github.com/tonimnim/Komiut-sub007/internal/gateway"
	"github.com/tonimnim/Komiut-sub007/internal/handlers"
	"github.com/tonimnim/Komiut-sub007/internal/ledger"
	"github.com/tonimnim/Komiut-sub007/internal/metrics"
	"github.com/tonimnim/Komiut-sub007/internal/models"
	"github.com/tonimnim/Komiut-sub007/internal/publisher"
	"github.com/tonimnim/Komiut-sub007/internal/repository/posgrest"
	"github.com/tonimnim/Komiut-sub007/internal/service"
	"github.com/tonimnim/Komiut-sub007/internal/subscriber"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&ledger.Wallet{}, &ledger.WalletCredit{}, &models.TopupTransaction{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if err := database.SeedWallets(db); err != nil {
		log.Fatalf("failed to seed wallets: %v", err)
	}

	metrics.RegisterMetrics()

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	publisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	minAmount, maxAmount := cfg.Engine.AmountBounds()
	engineCfg := service.EngineConfig{
		MinAmount:                minAmount,
		MaxAmount:                maxAmount,
		PollInterval:             cfg.Engine.PollInterval,
		MaxPollAttempts:          cfg.Engine.MaxPollAttempts,
		AuthorizationGracePeriod: cfg.Engine.AuthorizationGracePeriod,
	}

	walletLedger := ledger.NewService(db)
	archive := posgrest.New[models.TopupTransaction](db)
	gatewayClient := gateway.NewSandbox(cfg.Engine.SandboxSucceedAfterPolls)

	supervisor := service.NewConfirmationSupervisor(
		context.Background(),
		engineCfg,
		gatewayClient,
		walletLedger,
		publisher,
		archive,
	)

	if err := supervisor.ResumeStale(context.Background()); err != nil {
		logrus.WithError(err).Error("restart sweep failed")
	}

	topupHandler := handlers.NewTopupHandler(supervisor)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(topupHandler)

	a.initSubscribers(topupHandler, publisher, cfg.Kafka.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(topupHandler *handlers.TopupHandler, publisher *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.TopupConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, publisher, retryConfig)

	ctx := context.Background()
	go consumer.Listen(ctx, func(topic string, value []byte) error {
		err := topupHandler.HandleEvents(ctx, topic, value)
		if err != nil {
			logrus.Error(err.Error())
		}
		return err
	})
}
