package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/configs"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/middlewares"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/routes"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if cfg.SeedMenu {
		if err := configs.SeedMenu(); err != nil {
			log.Fatalf("seed menu failed: %v", err)
		}
	}

	// Live notification feed
	hub := ws.NewNotificationHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
