package components

import (
	"vas-broker/internal/handler"
	"vas-broker/internal/handler/api"
	"vas-broker/internal/handler/middleware"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewAgentHandler,
		api.NewWalletHandler,
		NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type adminParams struct {
	fx.In

	Requests   queries.RequestQueries
	Lifecycle  commands.LifecycleCommands
	Agents     commands.AgentAdminCommands
	AgentQ     queries.AgentQueries
	Inventory  commands.InventoryAdminCommands
	StockQ     queries.InventoryQueries
	Dispatcher *dispatch.Dispatcher
}

func NewAdminHandler(p adminParams) *api.AdminHandler {
	return api.NewAdminHandler(api.AdminDeps{
		Requests:  p.Requests,
		Lifecycle: p.Lifecycle,
		Agents:    p.Agents,
		AgentQ:    p.AgentQ,
		Inventory: p.Inventory,
		StockQ:    p.StockQ,
		Sweeper:   p.Dispatcher,
	})
}

func NewHandlers(r *api.RequestHandler, a *api.AgentHandler, w *api.WalletHandler, adm *api.AdminHandler) handler.Handlers {
	return handler.Handlers{Requests: r, Agent: a, Wallet: w, Admin: adm}
}
