package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "qpay_billing/docs" // This will be auto-generated
	"qpay_billing/internal/adapter/http/handlers"
	repository2 "qpay_billing/internal/adapter/persistence/repository"
	"qpay_billing/internal/infrastructure/database"
	"qpay_billing/internal/infrastructure/orders"
	"qpay_billing/internal/infrastructure/payments"
	"qpay_billing/internal/infrastructure/scheduler"
	"qpay_billing/internal/usecase"

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

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	requestRepo := repository2.NewInvoiceRequestDynamoRepository(ddb)
	tokenRepo := repository2.NewGatewayTokenDynamoRepository(ddb)
	publisher := repository2.NewEventOutboxDynamoRepository(ddb)

	gateway, err := payments.NewQPayGateway(payments.QPayConfig{
		Username:          os.Getenv("QPAY_USERNAME"),
		Password:          os.Getenv("QPAY_PASSWORD"),
		AuthTokenURL:      os.Getenv("QPAY_AUTH_TOKEN_URL"),
		InvoiceRequestURL: os.Getenv("QPAY_INVOICE_REQUEST_URL"),
		PaymentCheckURL:   os.Getenv("QPAY_PAYMENT_CHECK_URL"),
	})
	if err != nil {
		log.Fatalf("QPay gateway not configured: %v", err)
	}

	orderService, err := orders.NewOrderServiceClient(os.Getenv("ORDER_SERVICE_URL"))
	if err != nil {
		log.Fatalf("Order service client not configured: %v", err)
	}

	creationUseCase := usecase.NewInvoiceCreationUseCase(
		invoiceRepo,
		requestRepo,
		tokenRepo,
		gateway,
		orderService,
		publisher,
		usecase.CreationConfig{
			InvoiceCode:         os.Getenv("QPAY_INVOICE_CODE"),
			InvoiceReceiverCode: getenvDefault("QPAY_INVOICE_RECEIVER_CODE", "terminal"),
			CallbackURL:         os.Getenv("QPAY_CALLBACK_URL"),
		},
	)
	reconciliationUseCase := usecase.NewReconciliationUseCase(invoiceRepo, gateway, publisher)
	tokenRefreshUseCase := usecase.NewTokenRefreshUseCase(tokenRepo, gateway)

	invoiceHandler := handlers.NewInvoiceHandler(creationUseCase, reconciliationUseCase)
	tokenHandler := handlers.NewTokenHandler(tokenRefreshUseCase)

	// The token cache is kept warm in-process; no scheduler hop over
	// the network.
	scheduler.NewTokenRefreshScheduler(tokenRefreshUseCase, tokenRefreshInterval()).Start(context.Background())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, invoiceHandler, tokenHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func tokenRefreshInterval() time.Duration {
	v := os.Getenv("TOKEN_REFRESH_INTERVAL_MINUTES")
	if v == "" {
		return 30 * time.Minute
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		log.Printf("invalid TOKEN_REFRESH_INTERVAL_MINUTES=%q, using default", v)
		return 30 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
