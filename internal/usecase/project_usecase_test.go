package usecase

import (
	"context"
	"errors"
	"testing"

	"brightworks/internal/domain/entities"
	mock_interfaces "brightworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedQuote() entities.Quote {
	return entities.Quote{
		ID:                 "q1",
		ReferenceNumber:    "QR-ABCD2345",
		UserID:             "u1",
		ContactName:        "Ada",
		ContactEmail:       "ada@example.com",
		ServiceCategory:    "web-development",
		ServiceType:        "e-commerce",
		EstimatedBudget:    "$150 - $450",
		ProjectDescription: "storefront",
		Timeline:           "6 weeks",
		Status:             entities.QuoteStatusApproved,
	}
}

func TestProjectUseCase_Convert(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Convert(context.Background(), admin, "  ", ProjectOverrides{})
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Convert(context.Background(), client, "q1", ProjectOverrides{})
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{}, nil)

		_, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("pending quote not eligible, nothing written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		q := approvedQuote()
		q.Status = entities.QuoteStatusPending
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

		_, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		if !errors.Is(err, ErrQuoteNotEligible) {
			t.Fatalf("expected ErrQuoteNotEligible, got %v", err)
		}
	})

	t.Run("already converted not eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		q := approvedQuote()
		q.ProjectID = "p-old"
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

		_, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		if !errors.Is(err, ErrQuoteNotEligible) {
			t.Fatalf("expected ErrQuoteNotEligible, got %v", err)
		}
	})

	t.Run("success derives project from quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteID != "q1" || p.ClientID != "u1" {
					t.Fatalf("unexpected linkage: %+v", p)
				}
				if p.ProjectName != "web-development - e-commerce" {
					t.Fatalf("unexpected default name %q", p.ProjectName)
				}
				// quote has no explicit amount, budget upper bound applies
				if p.TotalAmount != 450 {
					t.Fatalf("expected amount 450, got %v", p.TotalAmount)
				}
				if p.Status != entities.ProjectStatusPending {
					t.Fatalf("expected pending project, got %s", p.Status)
				}
				if p.Deadline != "6 weeks" {
					t.Fatalf("expected deadline from quote timeline, got %q", p.Deadline)
				}
				return p, nil
			},
		)
		quoteRepo.EXPECT().MarkConverted(gomock.Any(), "q1", gomock.Any()).Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusConverted}, nil)

		res, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated project id")
		}
	})

	t.Run("overrides take precedence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ProjectName != "Custom build" || p.TotalAmount != 1200 {
					t.Fatalf("overrides ignored: %+v", p)
				}
				return p, nil
			},
		)
		quoteRepo.EXPECT().MarkConverted(gomock.Any(), "q1", gomock.Any()).Return(entities.Quote{ID: "q1"}, nil)

		_, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{ProjectName: "Custom build", TotalAmount: 1200})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("phase two failure reports partial conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Project{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) { return p, nil },
		)
		quoteRepo.EXPECT().MarkConverted(gomock.Any(), "q1", gomock.Any()).Return(entities.Quote{}, errors.New("db down"))

		_, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		var partial *PartialConversionError
		if !errors.As(err, &partial) {
			t.Fatalf("expected PartialConversionError, got %v", err)
		}
		if partial.QuoteID != "q1" || partial.ProjectID == "" {
			t.Fatalf("partial error missing ids: %+v", partial)
		}
	})

	t.Run("retry resumes phase one project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		orphan := entities.Project{ID: "p-orphan", QuoteID: "q1"}
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(orphan, nil)
		quoteRepo.EXPECT().MarkConverted(gomock.Any(), "q1", "p-orphan").Return(entities.Quote{ID: "q1"}, nil)

		res, err := uc.Convert(context.Background(), admin, "q1", ProjectOverrides{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "p-orphan" {
			t.Fatalf("expected resumed project, got %+v", res)
		}
	})
}

func TestBudgetRangeMax(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$150 - $450", 450},
		{"$150-$450", 450},
		{"$1,000 - $2,500", 2500},
		{"$99.50 - $199.99", 199.99},
		{" $150 - $450 ", 450},
		{"150 - 450", 0},
		{"$450", 0},
		{"call us", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := BudgetRangeMax(tc.in); got != tc.want {
			t.Fatalf("BudgetRangeMax(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("non admin forbidden", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), client, CreateProjectInput{ProjectName: "x"})
		if !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Create(context.Background(), admin, CreateProjectInput{ProjectName: "  "})
		if !errors.Is(err, ErrMissingProjectName) {
			t.Fatalf("expected ErrMissingProjectName, got %v", err)
		}
	})

	t.Run("success has no quote link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.QuoteID != "" {
					t.Fatalf("direct creation must not link a quote: %+v", p)
				}
				if p.Status != entities.ProjectStatusPending {
					t.Fatalf("expected pending, got %s", p.Status)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), admin, CreateProjectInput{ProjectName: "Rebrand", ClientID: "u2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_GetForQuote(t *testing.T) {
	t.Run("no project id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, ok, err := uc.GetForQuote(context.Background(), entities.Quote{ID: "q1"})
		if err != nil || ok {
			t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("dangling reference reads as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-gone").Return(entities.Project{}, nil)

		_, ok, err := uc.GetForQuote(context.Background(), entities.Quote{ID: "q1", ProjectID: "p-gone"})
		if err != nil || ok {
			t.Fatalf("expected absent for dangling ref, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)

		p, ok, err := uc.GetForQuote(context.Background(), entities.Quote{ID: "q1", ProjectID: "p1"})
		if err != nil || !ok || p.ID != "p1" {
			t.Fatalf("unexpected result: %+v ok=%v err=%v", p, ok, err)
		}
	})
}

func TestProjectUseCase_SetStatusAndDelete(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.SetStatus(context.Background(), admin, "p1", "archived")
		if !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
	})

	t.Run("status update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.ProjectStatusInProgress).Return(entities.Project{ID: "p1", Status: entities.ProjectStatusInProgress}, nil)

		res, err := uc.SetStatus(context.Background(), admin, " p1 ", entities.ProjectStatusInProgress)
		if err != nil || res.Status != entities.ProjectStatusInProgress {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("status update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.ProjectStatusCompleted).Return(entities.Project{}, nil)

		if _, err := uc.SetStatus(context.Background(), admin, "p1", entities.ProjectStatusCompleted); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("delete forbidden for non admin", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		if err := uc.Delete(context.Background(), client, "p1"); !errors.Is(err, ErrActorForbidden) {
			t.Fatalf("expected ErrActorForbidden, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.Delete(context.Background(), admin, "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
