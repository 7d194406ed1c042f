package routes

import (
	"orcamentix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathServices = "/services"
	PathCatalog  = "/catalog"
)

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, serviceHandler *handlers.ServiceHandler, catalogHandler *handlers.CatalogHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/units", catalogHandler.ListUnits)
		catalog.POST("/units", catalogHandler.AddUnit)
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.POST("/categories", catalogHandler.AddCategory)
	}
}
