package api

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	accountHandlers "github.com/faseops/membership/scheduled-tasks/account/handlers"
	adminHandlers "github.com/faseops/membership/scheduled-tasks/admin/handlers"
	authHandlers "github.com/faseops/membership/scheduled-tasks/auth/handlers"
	eventHandlers "github.com/faseops/membership/scheduled-tasks/event/handlers"
	financeHandlers "github.com/faseops/membership/scheduled-tasks/finance/handlers"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/mid"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
	registrationHandlers "github.com/faseops/membership/scheduled-tasks/registration/handlers"
	"github.com/faseops/membership/scheduled-tasks/secretmanager"
	stripeHandlers "github.com/faseops/membership/scheduled-tasks/stripe/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() (http.Handler, error) {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	accounts := accountHandlers.NewAccounts(loggerProvider, a.conn)
	auth := authHandlers.NewAuth(loggerProvider, a.conn)
	registrations := registrationHandlers.NewRegistrations(loggerProvider, a.conn)
	event := eventHandlers.NewEvent(loggerProvider, a.conn)
	admin := adminHandlers.NewAdmin(loggerProvider, a.conn)

	finance, err := financeHandlers.NewFinance(backgroundContext, loggerProvider, a.conn)
	if err != nil {
		return nil, err
	}

	stripe, err := stripeHandlers.NewStripe(backgroundContext, loggerProvider, a.conn)
	if err != nil {
		return nil, err
	}

	app.Get("/health", healthCheckHandler)

	accountsGroup := web.NewGroup(app, "/accounts")
	{
		accountsGroup.Get("", accounts.ListAccountsHandler)
		accountsGroup.Get("/:accountID", accounts.GetAccountHandler, mid.ValidatePathParamNotEmpty("accountID"))
		accountsGroup.Post("/:accountID/status", accounts.UpdateStatusHandler, mid.ValidatePathParamNotEmpty("accountID"))
	}

	authGroup := web.NewGroup(app, "/auth")
	{
		authGroup.Post("/send-verification", auth.SendVerificationHandler)
		authGroup.Post("/verify-user-email", auth.VerifyUserEmailHandler)
	}

	registrationsGroup := web.NewGroup(app, "/rendezvous-registrations")
	{
		registrationsGroup.Post("/status", registrations.UpdateStatusHandler)
		registrationsGroup.Post("/delete", registrations.DeleteHandler)
	}

	eventGroup := web.NewGroup(app, "/event")
	{
		eventGroup.Post("/checkin", event.CheckInHandler)
		eventGroup.Get("/stats", event.StatsHandler)

		tasksGroup := eventGroup.NewSubgroup("/tasks")
		{
			tasksGroup.Post("", event.CreateTaskHandler)
			tasksGroup.Get("", event.ListTasksHandler)
			tasksGroup.Get("/:taskID", event.GetTaskHandler, mid.ValidatePathParamNotEmpty("taskID"))
			tasksGroup.Patch("/:taskID", event.UpdateTaskHandler, mid.ValidatePathParamNotEmpty("taskID"))
			tasksGroup.Delete("/:taskID", event.DeleteTaskHandler, mid.ValidatePathParamNotEmpty("taskID"))
		}
	}

	financeGroup := web.NewGroup(app, "/finance")
	{
		financeGroup.Post("/invoices/paid", finance.GeneratePaidInvoiceHandler)
		financeGroup.Post("/invoices/rendezvous", finance.GenerateRegistrationInvoiceHandler)
		financeGroup.Get("/invoices/:invoiceNumber/pdf", finance.DownloadInvoiceHandler, mid.ValidatePathParamNotEmpty("invoiceNumber"))
		financeGroup.Get("/activities", finance.ListActivitiesHandler)
	}

	paymentsGroup := web.NewGroup(app, "/payments")
	{
		paymentsGroup.Post("/checkout-session", stripe.CreateCheckoutSessionHandler)
		paymentsGroup.Post("/payment-link", stripe.CreatePaymentLinkHandler)
		paymentsGroup.Get("/invoices", stripe.ListInvoicesHandler)
		paymentsGroup.Get("/payments", stripe.ListPaymentsHandler)
	}

	adminGroup := web.NewGroup(app, "/firestore", mid.APIKey(adminAPIKeyProvider))
	{
		adminGroup.Get("/collections", admin.ListCollectionsHandler)
	}

	return app, nil
}

func healthCheckHandler(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}

// adminAPIKeyProvider reads the shared admin key from secret manager. An
// empty return rejects every caller.
func adminAPIKeyProvider(ctx *gin.Context) string {
	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretAdminAPIKey)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}
