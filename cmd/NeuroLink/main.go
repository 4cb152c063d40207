package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	https_server "NeuroLink/api/http"
	"NeuroLink/internal/config"
	"NeuroLink/pkg/zlog"
)

func main() {
	conf := config.GetConfig()
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		zlog.Info(fmt.Sprintf("server starting on %s", addr))
		if err := https_server.GE.Run(addr); err != nil {
			zlog.Fatal("server failed to start: " + err.Error())
			return
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server...")
	zlog.Info("server stopped")
}
