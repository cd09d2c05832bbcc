package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/hartley-interiors/studio-server/internal/handlers/v1/item"
	"github.com/hartley-interiors/studio-server/internal/handlers/v1/project"
	"github.com/hartley-interiors/studio-server/internal/handlers/v1/status"
	"github.com/hartley-interiors/studio-server/internal/handlers/v1/taxpreset"
	"github.com/hartley-interiors/studio-server/internal/handlers/v1/transaction"
	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/realtime"
	"github.com/hartley-interiors/studio-server/internal/service"
	"github.com/hartley-interiors/studio-server/internal/workflow"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Composer  *workflow.Creator
	Allocator *workflow.OperatorItemAllocator
	Hub       *realtime.Hub
	UploadDir string
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("Studio Server", "1.0.0"))

	transaction.NewCreateTransactionHandler(r.Composer, r.Hub).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateStatusHandler(r.Service.Transaction, r.Hub).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction, r.Hub).Register(humaAPI)

	item.NewListItemsHandler(r.Service.Item).Register(humaAPI)
	item.NewGetItemHandler(r.Service.Item).Register(humaAPI)
	item.NewAllocateItemsHandler(r.Allocator).Register(humaAPI)
	item.NewUpdateItemHandler(r.Service.Item).Register(humaAPI)
	item.NewDeleteItemHandler(r.Service.Item).Register(humaAPI)

	project.NewCreateProjectHandler(r.Service.Project).Register(humaAPI)
	project.NewProjectReadHandler(r.Service.Project).Register(humaAPI)
	project.NewUpdateProjectHandler(r.Service.Project).Register(humaAPI)
	project.NewClientSummaryHandler(r.Service.Project).Register(humaAPI)
	project.NewReceiptLinkHandler(r.Service.Project).Register(humaAPI)
	project.NewInvoiceHandler(r.Service.Project).Register(humaAPI)
	project.NewDeleteProjectHandler(r.Service.Project).Register(humaAPI)

	taxpreset.NewListTaxPresetsHandler(r.Service.TaxPreset).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	if r.Hub != nil {
		mux.Handle("/ws", r.Hub)
	}
	if r.UploadDir != "" {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.UploadDir))))
	}

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
