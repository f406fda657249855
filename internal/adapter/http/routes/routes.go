package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "whitepaper_billing/docs" // This will be auto-generated
	"whitepaper_billing/internal/adapter/http/handlers"
	repository2 "whitepaper_billing/internal/adapter/persistence/repository"
	"whitepaper_billing/internal/export"
	"whitepaper_billing/internal/infrastructure/database"
	"whitepaper_billing/internal/infrastructure/payments"
	"whitepaper_billing/internal/infrastructure/storage"
	"whitepaper_billing/internal/usecase"
	"whitepaper_billing/internal/usecase/interfaces"

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

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, settingsRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, clientRepo, settingsRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, invoiceRepo, paymentGateway)

	var artifactStore interfaces.IArtifactStore
	if os.Getenv("DOCUMENTS_BUCKET") != "" {
		store, err := storage.NewS3ArtifactStore(context.Background())
		if err != nil {
			log.Printf("Document artifact store not configured: %v", err)
		} else {
			artifactStore = store
		}
	}
	pipeline := export.NewPipeline(artifactStore, export.DefaultOptions())
	exportUseCase := usecase.NewExportUseCase(invoiceRepo, quoteRepo, settingsRepo, pipeline)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, clientHandler, invoiceHandler, quoteHandler, settingsHandler, paymentHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
