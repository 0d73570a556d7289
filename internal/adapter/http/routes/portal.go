package routes

import (
	"brightworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathProjects  = "/projects"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	projectHandler *handlers.ProjectHandler,
	paymentHandler *handlers.PaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/user/:user_id", quoteHandler.ListQuotesForUser)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.POST("/:id/convert", projectHandler.ConvertQuote)
		quotes.GET("/:id/balance", paymentHandler.GetQuoteBalance)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/client/:client_id", projectHandler.ListProjectsForClient)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/status", projectHandler.PatchProjectStatus)
		projects.DELETE("/:id", projectHandler.DeleteProject)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/quote/:quote_id", paymentHandler.ListPaymentsForQuote)
		payments.GET("/user/:user_id", paymentHandler.ListPaymentsForUser)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.PATCH("/:id/status", paymentHandler.PatchPaymentStatus)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/admin", dashboardHandler.AdminDashboard)
		dashboard.GET("/client/:user_id", dashboardHandler.ClientDashboard)
	}
}
