package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/config"
	server "github.com/mverhoef/go-order-bridge/internal/app/controller/http/server"
	"github.com/mverhoef/go-order-bridge/internal/app/crm"
	"github.com/mverhoef/go-order-bridge/internal/app/erp"
	"github.com/mverhoef/go-order-bridge/internal/app/logger"
	"github.com/mverhoef/go-order-bridge/internal/app/queue"
	"github.com/mverhoef/go-order-bridge/internal/app/usecase/auth"
	"github.com/mverhoef/go-order-bridge/internal/app/usecase/orders"

	customers_controller "github.com/mverhoef/go-order-bridge/internal/app/controller/http/customers"
	orders_controller "github.com/mverhoef/go-order-bridge/internal/app/controller/http/orders"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	broker := queue.NewBroker(config.AMQPAddr)
	defer broker.Close()

	publisher := queue.NewPublisher(broker)
	gateway := erp.NewGateway(config.ERPAddr)
	crmClient := crm.NewClient(config.CRMAddr, config.CRMToken)

	orchestrator := orders.New(auth.New(config.APIKeys), publisher, gateway)

	runConsumers(ctx, broker, publisher, crmClient)

	httpServer := server.New(config,
		orders_controller.New(orchestrator),
		customers_controller.New(orchestrator),
	)
	httpServer.Run(ctx)
}

// runConsumers starts one consumer goroutine per CRM-bound queue. A consumer
// that cannot reach the broker exits with an error; the HTTP side keeps
// serving so the ERP leg stays available.
func runConsumers(ctx context.Context, broker *queue.Broker, publisher *queue.Publisher, crmClient *crm.Client) {
	consumers := []*queue.Consumer{
		queue.NewConsumer(broker, publisher, queue.QueueOrdersCreated, "CRM", crm.OrderCreatedHandler(crmClient)),
		queue.NewConsumer(broker, publisher, queue.QueueOrdersDeleted, "CRM", crm.OrderDeletedHandler(crmClient)),
		queue.NewConsumer(broker, publisher, queue.QueueCustomersSync, "CRM", crm.CustomerSyncHandler(crmClient)),
	}

	for _, consumer := range consumers {
		consumer := consumer
		go func() {
			if err := consumer.Run(ctx); err != nil {
				zap.L().Error("consumer stopped with error", zap.Error(err))
			}
		}()
	}
}
