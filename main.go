package main

import (
	"fmt"
	"os"

	"vznx/config"
	"vznx/dao"
	"vznx/logutils"
	"vznx/service"

	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()
	r.Use(service.CORSMiddleware())

	err := dao.InitDB()
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "VZNX API Running"})
	})
	service.RegisterMetrics(r)

	api := r.Group("/api")
	service.RegisterAuth(api.Group("/auth"))

	// Entity routes sit behind the token check; auth itself is public.
	service.RegisterProject(api.Group("/projects", service.AuthMiddleware()))
	service.RegisterTask(api.Group("/tasks", service.AuthMiddleware()))
	service.RegisterTeam(api.Group("/team", service.AuthMiddleware()))

	err = r.Run(":" + config.GetConfig().Server.Port)
	if err != nil {
		logutils.Log.Fatal(err)
	}
}
