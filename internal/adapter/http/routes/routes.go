package routes

import (
	"log"
	"strconv"
	"time"

	_ "reform_flow/docs" // swag-generated swagger spec
	"reform_flow/internal/adapter/http/handlers"
	"reform_flow/internal/adapter/http/middleware"
	repository2 "reform_flow/internal/adapter/persistence/repository"
	"reform_flow/internal/config"
	"reform_flow/internal/infrastructure/database"
	"reform_flow/internal/infrastructure/notifications"
	"reform_flow/internal/usecase"
	"reform_flow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	stakeholderRepo := repository2.NewStakeholderDynamoRepository(ddb)
	approvalRepo := repository2.NewApprovalDynamoRepository(ddb)

	var notifier interfaces.INotificationGateway
	smtpGateway, err := notifications.NewSMTPGateway(cfg)
	if err != nil {
		log.Printf("Notification gateway not configured: %v", err)
	} else {
		notifier = smtpGateway
	}

	approvalUseCase := usecase.NewApprovalUseCase(proposalRepo, stakeholderRepo, approvalRepo, notifier)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, stakeholderRepo, approvalRepo)
	stakeholderUseCase := usecase.NewStakeholderUseCase(stakeholderRepo, proposalRepo, approvalUseCase, notifier)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase, approvalUseCase)
	stakeholderHandler := handlers.NewStakeholderHandler(stakeholderUseCase)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)

	auth := middleware.RequireAuth(middleware.AuthConfig{Secret: []byte(cfg.AuthSecret)})
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, nil)

	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimit(limiter))
	addPingRoutes(v1)
	addProposalRoutes(v1, auth, proposalHandler, stakeholderHandler, approvalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
