package routes

import (
	"orcamentix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAccount = "/account"
)

func addAccountRoutes(rg *gin.RouterGroup, accountHandler *handlers.AccountHandler) {
	account := rg.Group(PathAccount)
	{
		account.GET("", accountHandler.GetAccount)
		account.PUT("", accountHandler.UpdateAccount)
		account.PUT("/plan", accountHandler.SwitchPlan)
		account.POST("/reset", accountHandler.ResetAccount)
	}
}
