package usecase

import (
	"context"
	"strings"

	"brightworks/internal/domain/entities"
	"brightworks/internal/domain/stats"
	"brightworks/internal/usecase/interfaces"
)

// AdminDashboard is the admin-global aggregate view.
type AdminDashboard struct {
	TotalQuotes         int                            `json:"total_quotes"`
	QuotesByStatus      map[entities.QuoteStatus]int   `json:"quotes_by_status"`
	TotalProjects       int                            `json:"total_projects"`
	ProjectsByStatus    map[entities.ProjectStatus]int `json:"projects_by_status"`
	TotalPayments       int                            `json:"total_payments"`
	TotalRevenue        float64                        `json:"total_revenue"`
	ConversionRate      float64                        `json:"conversion_rate"`
	MonthlyRevenue      []stats.MonthBucket            `json:"monthly_revenue"`
	ServiceDistribution []stats.ServiceShare           `json:"service_distribution"`
}

// ClientDashboard is the per-user aggregate view.
type ClientDashboard struct {
	UserID             string                       `json:"user_id"`
	TotalQuotes        int                          `json:"total_quotes"`
	QuotesByStatus     map[entities.QuoteStatus]int `json:"quotes_by_status"`
	ActiveProjects     int                          `json:"active_projects"`
	TotalPaid          float64                      `json:"total_paid"`
	OutstandingBalance float64                      `json:"outstanding_balance"`
}

const dashboardMonthsBack = 6

// IDashboardUseCase loads collection snapshots and derives the figures
// both portals render. All math lives in the pure stats package; this
// layer only fetches and composes, recomputing in full on every read.
//
//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/dashboard_usecase_mock.go -package=mocks

type IDashboardUseCase interface {
	AdminView(ctx context.Context, actor entities.Actor) (AdminDashboard, error)
	ClientView(ctx context.Context, userID string) (ClientDashboard, error)
}

type DashboardUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	projectRepo interfaces.IProjectRepository
	paymentRepo interfaces.IPaymentRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(quoteRepo interfaces.IQuoteRepository, projectRepo interfaces.IProjectRepository, paymentRepo interfaces.IPaymentRepository) *DashboardUseCase {
	return &DashboardUseCase{quoteRepo: quoteRepo, projectRepo: projectRepo, paymentRepo: paymentRepo}
}

func (u *DashboardUseCase) AdminView(ctx context.Context, actor entities.Actor) (AdminDashboard, error) {
	if !actor.IsAdmin() {
		return AdminDashboard{}, ErrActorForbidden
	}

	quotes, err := u.quoteRepo.ListAll(ctx, "")
	if err != nil {
		return AdminDashboard{}, err
	}
	projects, err := u.projectRepo.ListAll(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	payments, err := u.paymentRepo.ListAll(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}

	projectCounts := make(map[entities.ProjectStatus]int)
	for _, p := range projects {
		projectCounts[p.Status]++
	}

	return AdminDashboard{
		TotalQuotes:         len(quotes),
		QuotesByStatus:      stats.StatusCounts(quotes),
		TotalProjects:       len(projects),
		ProjectsByStatus:    projectCounts,
		TotalPayments:       len(payments),
		TotalRevenue:        stats.TotalRevenue(payments),
		ConversionRate:      stats.ConversionRate(quotes),
		MonthlyRevenue:      stats.MonthlyRevenue(payments, dashboardMonthsBack),
		ServiceDistribution: stats.ServiceDistribution(quotes),
	}, nil
}

func (u *DashboardUseCase) ClientView(ctx context.Context, userID string) (ClientDashboard, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ClientDashboard{}, ErrInvalidQuoteID
	}

	quotes, err := u.quoteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return ClientDashboard{}, err
	}
	projects, err := u.projectRepo.ListByClientID(ctx, userID)
	if err != nil {
		return ClientDashboard{}, err
	}
	payments, err := u.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return ClientDashboard{}, err
	}

	active := 0
	for _, p := range projects {
		if p.Status == entities.ProjectStatusPending || p.Status == entities.ProjectStatusInProgress {
			active++
		}
	}

	paid := 0.0
	for _, p := range payments {
		if p.Status == entities.PaymentStatusCompleted {
			paid += p.Amount
		}
	}

	return ClientDashboard{
		UserID:             userID,
		TotalQuotes:        len(quotes),
		QuotesByStatus:     stats.StatusCounts(quotes),
		ActiveProjects:     active,
		TotalPaid:          paid,
		OutstandingBalance: stats.ClientOutstandingBalance(userID, quotes, payments),
	}, nil
}
