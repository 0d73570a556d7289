package routes

import (
	"log"
	"strconv"

	_ "brightworks/docs" // This will be auto-generated
	"brightworks/internal/adapter/http/handlers"
	"brightworks/internal/adapter/persistence/repository"
	"brightworks/internal/infrastructure/database"
	"brightworks/internal/infrastructure/payments"
	"brightworks/internal/usecase"
	"brightworks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway()
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo, projectRepo, paymentRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, quoteHandler, projectHandler, paymentHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
