package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hartley-interiors/studio-server/api"
	"github.com/hartley-interiors/studio-server/internal/config"
	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/operator"
	"github.com/hartley-interiors/studio-server/internal/realtime"
	"github.com/hartley-interiors/studio-server/internal/service"
	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/uploads"
	"github.com/hartley-interiors/studio-server/internal/workflow"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("studio-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	uploader, err := uploads.NewDiskStore(envConfig.UploadDir, envConfig.UploadBaseURL, envConfig.UploadQuotaBytes)
	if err != nil {
		logrus.WithError(err).Fatal("uploads.NewDiskStore")
		return
	}

	composer := workflow.NewCreator(
		&workflow.OperatorTransactionStore{Delegator: delegator, Service: svc.Transaction},
		svc.Item,
		uploader,
		logger,
	)

	hub := realtime.NewHub(logger)
	hub.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.HTTPPort,
			Service:   svc,
			Composer:  composer,
			Allocator: &workflow.OperatorItemAllocator{Delegator: delegator},
			Hub:       hub,
			UploadDir: envConfig.UploadDir,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
