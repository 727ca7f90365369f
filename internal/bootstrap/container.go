package bootstrap

import (
	"context"
	"log"

	"project-composer-be/internal/config"
	"project-composer-be/internal/controller"
	"project-composer-be/internal/handler"
	"project-composer-be/internal/pkg/logger"
	"project-composer-be/internal/repository/implementation"
	"project-composer-be/internal/repository/memory"
	"project-composer-be/internal/repository/unitofwork"
	"project-composer-be/internal/service"
	"project-composer-be/internal/websocket"

	pktNats "project-composer-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const workspaceSavedTopic = "workspace.saved"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	CatalogController   controller.ICatalogController
	WorkspaceController controller.IWorkspaceController
	ReportController    controller.IReportController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WorkspaceStreamHandler *handler.WorkspaceStreamHandler
	WebSocketHub           *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.StreamLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	sessionRepo := memory.NewWorkspaceSessionRepository()
	slotRepo := implementation.NewWorkspaceSlotRepository(rdb)

	// 4. Services
	publisherService := service.NewPublisherService(workspaceSavedTopic, pubSub)

	authService := service.NewAuthService(uowFactory, cfg.Auth, natsPub)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth, cfg.OAuth, natsPub)
	catalogService := service.NewCatalogService()

	workspaceService := service.NewWorkspaceService(
		sessionRepo,
		slotRepo,
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
	)
	syncService := service.NewSyncService(workspaceService, sysLogger)
	reportService := service.NewReportService(workspaceService)

	consumerService := service.NewConsumerService(
		pubSub,
		workspaceSavedTopic,
		workspaceService,
		syncService,
		wsHub,
	)

	// 5. WebSocket handler
	streamHandler := handler.NewWorkspaceStreamHandler(syncService, wsHub, wsLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService, syncService),
		OAuthController:     controller.NewOAuthController(oauthService, cfg.App),
		CatalogController:   controller.NewCatalogController(catalogService),
		WorkspaceController: controller.NewWorkspaceController(workspaceService),
		ReportController:    controller.NewReportController(reportService),

		ConsumerService: consumerService,

		WorkspaceStreamHandler: streamHandler,
		WebSocketHub:           wsHub,
	}
}
