package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/config"
	server "github.com/teamwear/jersey-orders/internal/app/controller/http/server"
	"github.com/teamwear/jersey-orders/internal/app/logger"
	"github.com/teamwear/jersey-orders/internal/app/provision"
	storage "github.com/teamwear/jersey-orders/internal/app/storage/api"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	store, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer store.Close()

	err = provision.EnsureAdmin(context.Background(), config, store)
	if err != nil {
		zap.L().Fatal("error while provisioning admin account", zap.Error(err))
	}

	httpServer := server.New(config, store)
	httpServer.StartHTTPServer()
}
