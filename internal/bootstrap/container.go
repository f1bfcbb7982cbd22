package bootstrap

import (
	"context"
	"log"

	"matchmaker-be/internal/config"
	"matchmaker-be/internal/controller"
	"matchmaker-be/internal/handler"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/memory"
	"matchmaker-be/internal/repository/unitofwork"
	"matchmaker-be/internal/service"
	"matchmaker-be/internal/websocket"

	pktNats "matchmaker-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SwipeController controller.ISwipeController
	MatchController controller.IMatchController

	// Background Services (Exposed for main.go to run)
	DeliveryService service.IDeliveryService
	MatchDetector   service.IMatchDetector

	// WebSockets
	RealtimeHandler *handler.RealtimeHandler
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	wsLogger := logger.NewIsolatedLogger(cfg.Realtime.LogFilePath)

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: int64(cfg.Realtime.SendBuffer)},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	// 3. Infrastructure
	// NATS domain events are optional. A nil *Publisher must not reach the
	// services as a non-nil interface.
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// Redis relays realtime events between instances.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { rdb.Close() })
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, cfg.Realtime.RedisChannel, wsLogger)
	deliveryService := service.NewDeliveryService(pubSub, cfg.Realtime.DeliveryTopic, wsHub, wsLogger)

	// 4. Services
	matchCache := memory.NewMatchCache(cfg.Chat.MatchCacheTTL)

	swipeLedger := service.NewSwipeLedger(uowFactory, sysLogger)
	matchDetector := service.NewMatchDetector(uowFactory, swipeLedger, matchCache, eventPublisher, deliveryService, sysLogger)
	swipeService := service.NewSwipeService(swipeLedger, matchDetector, sysLogger)

	authorizer := service.NewMatchAuthorizer(uowFactory, matchCache)
	readTracker := service.NewReadTracker(uowFactory, authorizer, sysLogger)
	matchService := service.NewMatchService(uowFactory, authorizer, readTracker)
	chatService := service.NewChatService(
		uowFactory,
		authorizer,
		readTracker,
		eventPublisher,
		deliveryService,
		cfg.Chat.MaxMessageLength,
		sysLogger,
	)

	// 5. Controllers
	c.SwipeController = controller.NewSwipeController(swipeService)
	c.MatchController = controller.NewMatchController(matchService, chatService)
	c.RealtimeHandler = handler.NewRealtimeHandler(wsHub, cfg.Auth.JwtSecret, cfg.Realtime.SendBuffer, wsLogger)
	c.WebSocketHub = wsHub
	c.DeliveryService = deliveryService
	c.MatchDetector = matchDetector

	return c
}

// Close releases broker connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.Logger.Sync()
}
