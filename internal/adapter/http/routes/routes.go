package routes

import (
	"context"
	"log"
	"strconv"

	_ "orcamentix/docs" // This will be auto-generated
	"orcamentix/internal/adapter/http/handlers"
	"orcamentix/internal/adapter/persistence/memory"
	repository2 "orcamentix/internal/adapter/persistence/repository"
	"orcamentix/internal/infrastructure/database"
	"orcamentix/internal/infrastructure/pdf"
	"orcamentix/internal/usecase"
	"orcamentix/internal/usecase/interfaces"

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
	clientRepo, serviceRepo, quoteRepo, catalogRepo, accountRepo := buildRepositories()

	accountUseCase := usecase.NewAccountUseCase(accountRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, accountRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, catalogRepo, accountRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, accountRepo)
	exportUseCase := usecase.NewExportUseCase(quoteRepo, accountRepo, pdf.NewMarotoRenderer())

	clientHandler := handlers.NewClientHandler(clientUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	catalogHandler := handlers.NewCatalogHandler(serviceUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)
	accountHandler := handlers.NewAccountHandler(accountUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, clientHandler, serviceHandler, catalogHandler)
	addQuoteRoutes(v1, quoteHandler, exportHandler)
	addAccountRoutes(v1, accountHandler)
}

// buildRepositories wires DynamoDB-backed adapters, falling back to seeded
// in-memory ones when the store is unreachable at startup. The app stays
// usable offline; state simply does not survive the process.
func buildRepositories() (
	interfaces.IClientRepository,
	interfaces.IServiceRepository,
	interfaces.IQuoteRepository,
	interfaces.ICatalogRepository,
	interfaces.IAccountRepository,
) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err == nil {
		err = database.Ping(ctx, ddb)
	}
	if err != nil {
		log.Printf("[startup][routes] DynamoDB unavailable, using in-memory storage: %v", err)
		return memory.NewClientRepository(memory.SeedClients()...),
			memory.NewServiceRepository(memory.SeedServices()...),
			memory.NewQuoteRepository(),
			memory.NewCatalogRepository(),
			memory.NewAccountRepository()
	}

	return repository2.NewClientDynamoRepository(ddb),
		repository2.NewServiceDynamoRepository(ddb),
		repository2.NewQuoteDynamoRepository(ddb),
		repository2.NewCatalogDynamoRepository(ddb),
		repository2.NewAccountDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
