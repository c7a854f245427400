package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-admin/internal/catalog"
	"catalog-admin/internal/config"
	"catalog-admin/internal/console"
	"catalog-admin/internal/handlers"
	"catalog-admin/internal/middleware"
)

func main() {
	config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	client := catalog.NewClient(
		config.AppEnv.APIBase,
		config.AppEnv.APIPath,
		config.AppEnv.RequestTimeout,
	)
	store := console.NewStore()

	zap.S().Infof("catalog admin console starting against %s", config.AppEnv.APIBase)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.GET("/", handlers.Home())
	r.GET("/login", handlers.LoginPage(store))
	r.POST("/login", handlers.Login(client, store))

	products := r.Group("/products")
	products.Use(middleware.Session())
	{
		products.GET("", handlers.ProductsPage(client, store))
		products.POST("/modal/open", handlers.OpenModal(store))
		products.POST("/modal/close", handlers.CloseModal(store))
		products.POST("/modal/images/add", handlers.AddImage(store))
		products.POST("/modal/images/remove", handlers.RemoveImage(store))
		products.POST("/modal/confirm", handlers.ConfirmModal(client, store))
	}

	r.Run(":" + config.AppEnv.Port)
}
