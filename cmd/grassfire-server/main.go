// Command grassfire-server serves the solver over HTTP.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/borismassesa/grassfire/api"
	"github.com/borismassesa/grassfire/config"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	router := api.NewRouter(api.Defaults{
		Rows:     cfg.DefaultRows,
		Cols:     cfg.DefaultCols,
		Percent:  cfg.DefaultPercent,
		MaxPaths: cfg.DefaultMaxPaths,
	})

	addr := fmt.Sprintf("%s:%d", cfg.HostIP, cfg.RESTPort)
	log.Printf("[APP] [INFO] listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("[APP] [FATAL] server: %v", err)
	}
}
