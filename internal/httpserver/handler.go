package httpserver

import (
	"ttiring-notification-srv/internal/middleware"

	// Registers the Swagger docs.
	_ "ttiring-notification-srv/docs"

	alertUC "ttiring-notification-srv/internal/alert/usecase"
	keywordHTTP "ttiring-notification-srv/internal/keyword/delivery/http"
	keywordRepo "ttiring-notification-srv/internal/keyword/repository/postgre"
	keywordUC "ttiring-notification-srv/internal/keyword/usecase"
	noticeRepo "ttiring-notification-srv/internal/notice/repository/postgre"
	notificationHTTP "ttiring-notification-srv/internal/notification/delivery/http"
	historyRepo "ttiring-notification-srv/internal/notification/repository/postgre"
	tokenRepo "ttiring-notification-srv/internal/notification/repository/redis"
	notificationUC "ttiring-notification-srv/internal/notification/usecase"
	userHTTP "ttiring-notification-srv/internal/user/delivery/http"
	userRepo "ttiring-notification-srv/internal/user/repository/postgre"
	userUC "ttiring-notification-srv/internal/user/usecase"
	webhookHTTP "ttiring-notification-srv/internal/webhook/delivery/http"
	dedupRepo "ttiring-notification-srv/internal/webhook/repository/redis"
	webhookUC "ttiring-notification-srv/internal/webhook/usecase"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api        = "/api/v1"
	WebhookApi = "/api/webhook"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.logger, srv.jwtMgr, srv.discord)

	srv.gin.Use(gin.Logger())
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(gzip.Gzip(gzip.DefaultCompression))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	keywordRepository := keywordRepo.New(srv.logger, srv.postgresDB)
	userRepository := userRepo.New(srv.logger, srv.postgresDB)
	noticeRepository := noticeRepo.New(srv.logger, srv.postgresDB)
	historyRepository := historyRepo.New(srv.logger, srv.postgresDB)
	tokenRepository := tokenRepo.New(srv.logger, srv.redis)
	dedupRepository := dedupRepo.New(srv.logger, srv.redis, srv.webhook.DedupTTL)

	// Usecases
	alertUsecase := alertUC.New(srv.logger, srv.discord)
	keywordUsecase := keywordUC.New(srv.logger, keywordRepository)
	userUsecase := userUC.New(srv.logger, userRepository)
	notificationUsecase := notificationUC.New(srv.logger, keywordRepository, userRepository,
		historyRepository, tokenRepository, srv.sender, alertUsecase, srv.dispatch)
	webhookUsecase := webhookUC.New(srv.logger, noticeRepository, dedupRepository, notificationUsecase, alertUsecase)

	// Handlers
	limiter := middleware.NewHourlyLimiter(srv.webhook.RatePerHour, srv.webhook.RateBurst)

	api := srv.gin.Group(Api)
	keywordHTTP.New(srv.logger, keywordUsecase, srv.discord).RegisterRoutes(api, mw)
	userHTTP.New(srv.logger, userUsecase, srv.discord).RegisterRoutes(api, mw)
	notificationHTTP.New(srv.logger, notificationUsecase, srv.discord).RegisterRoutes(api, mw)

	webhookHTTP.New(srv.logger, webhookUsecase, srv.discord, srv.webhook.APIKey, limiter).
		RegisterRoutes(srv.gin.Group(WebhookApi), mw)
}
