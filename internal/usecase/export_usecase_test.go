package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"orcamentix/internal/domain/entities"
	mock_interfaces "orcamentix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func exportableQuote() entities.Quote {
	return entities.Quote{
		ID:      "q1",
		Status:  entities.QuoteStatusEnviado,
		Cliente: entities.ClientSnapshot{ID: "c1", Nome: "Ana", Email: "ana@email.com"},
		Itens: []entities.QuoteItem{
			{Nome: "Pintura", Unidade: "m²", Preco: 100, Qtd: 2},
			{Nome: "Reparo", Unidade: "un", Preco: 50, Qtd: 1},
		},
		Margem:   10,
		Desconto: 5,
	}
}

func accountOn(plan string) entities.Account {
	return entities.Account{Nome: "Ana", Plan: plan, Caps: entities.ResolveCaps(plan)}
}

func TestExportUseCase_WhatsappLink(t *testing.T) {
	t.Run("basic plan blocked before any URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		accountRepo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewExportUseCase(quoteRepo, accountRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(exportableQuote(), nil)
		accountRepo.EXPECT().Get(gomock.Any()).Return(accountOn("basic"), nil)

		link, err := uc.WhatsappLink(context.Background(), "q1")
		if !errors.Is(err, ErrCapabilityDenied) {
			t.Fatalf("expected ErrCapabilityDenied, got %v", err)
		}
		if link != "" {
			t.Fatalf("no URL may leak on a blocked plan, got %q", link)
		}
	})

	t.Run("plus plan builds the share URL with the exact body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		accountRepo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewExportUseCase(quoteRepo, accountRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(exportableQuote(), nil)
		accountRepo.EXPECT().Get(gomock.Any()).Return(accountOn("plus"), nil)

		link, err := uc.WhatsappLink(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		const prefix = "https://wa.me/?text="
		if !strings.HasPrefix(link, prefix) {
			t.Fatalf("unexpected link: %q", link)
		}
		if strings.Contains(link, " ") || strings.Contains(link, "+R$") {
			t.Fatalf("link must be percent-encoded with %%20 spaces: %q", link)
		}

		body, err := url.QueryUnescape(strings.TrimPrefix(link, prefix))
		if err != nil {
			t.Fatalf("body does not decode: %v", err)
		}
		want := strings.Join([]string{
			"*Orçamentix*",
			"Cliente: Ana",
			"",
			"*Itens:*",
			"• Pintura — 2 m² x R$ 100,00 = R$ 200,00",
			"• Reparo — 1 un x R$ 50,00 = R$ 50,00",
			"",
			"Subtotal: R$ 250,00",
			"Margem (10%): +R$ 25,00",
			"Desconto (5%): -R$ 12,50",
			"*Total: R$ 262,50*",
		}, "\n")
		if body != want {
			t.Fatalf("unexpected body:\n%s\nwant:\n%s", body, want)
		}
	})

	t.Run("premium plan allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		accountRepo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewExportUseCase(quoteRepo, accountRepo, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(exportableQuote(), nil)
		accountRepo.EXPECT().Get(gomock.Any()).Return(accountOn("premium"), nil)

		if _, err := uc.WhatsappLink(context.Background(), "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quote without items not exportable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewExportUseCase(quoteRepo, nil, nil)

		bare := exportableQuote()
		bare.Itens = nil
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(bare, nil)

		_, err := uc.WhatsappLink(context.Background(), "q1")
		if !errors.Is(err, ErrExportNotReady) {
			t.Fatalf("expected ErrExportNotReady, got %v", err)
		}
	})
}

func TestExportUseCase_EmailLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	accountRepo := mock_interfaces.NewMockIAccountRepository(ctrl)
	uc := NewExportUseCase(quoteRepo, accountRepo, nil)

	quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(exportableQuote(), nil)
	accountRepo.EXPECT().Get(gomock.Any()).Return(accountOn("plus"), nil)

	link, err := uc.EmailLink(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "mailto:ana@email.com?subject=") {
		t.Fatalf("unexpected mailto target: %q", link)
	}
	if !strings.Contains(link, "subject="+encodeComponent("Proposta - Ana")) {
		t.Fatalf("unexpected subject: %q", link)
	}
	if !strings.Contains(link, "&body=") {
		t.Fatalf("expected body parameter: %q", link)
	}
}

func TestExportUseCase_GeneratePdf(t *testing.T) {
	t.Run("template follows the plan tier", func(t *testing.T) {
		cases := []struct {
			plan   string
			expect func(r *mock_interfaces.MockIQuotePdfRenderer)
		}{
			{"basic", func(r *mock_interfaces.MockIQuotePdfRenderer) {
				r.EXPECT().RenderBasic(gomock.Any()).Return([]byte("pdf"), nil)
			}},
			{"plus", func(r *mock_interfaces.MockIQuotePdfRenderer) {
				r.EXPECT().RenderPlus(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
			}},
			{"premium", func(r *mock_interfaces.MockIQuotePdfRenderer) {
				r.EXPECT().RenderPremium(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
			}},
		}

		for _, tc := range cases {
			t.Run(tc.plan, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
				accountRepo := mock_interfaces.NewMockIAccountRepository(ctrl)
				renderer := mock_interfaces.NewMockIQuotePdfRenderer(ctrl)
				uc := NewExportUseCase(quoteRepo, accountRepo, renderer)

				quoteRepo.EXPECT().GetByID(gomock.Any(), "q1").Return(exportableQuote(), nil)
				accountRepo.EXPECT().Get(gomock.Any()).Return(accountOn(tc.plan), nil)
				tc.expect(renderer)

				file, err := uc.GeneratePdf(context.Background(), "q1")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(file.Content) == 0 {
					t.Fatalf("expected content")
				}
				if !strings.HasPrefix(file.Name, "orcamento-Ana-") || !strings.HasSuffix(file.Name, ".pdf") {
					t.Fatalf("unexpected file name: %q", file.Name)
				}
			})
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewExportUseCase(quoteRepo, nil, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, nil)

		_, err := uc.GeneratePdf(context.Background(), "missing")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestPdfFileName(t *testing.T) {
	q := exportableQuote()
	q.Cliente.Nome = "Ana/Silva"
	name := pdfFileName(q, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if strings.Contains(name, "/") {
		t.Fatalf("path separators must be replaced: %q", name)
	}
	if !strings.HasPrefix(name, "orcamento-Ana-Silva-") {
		t.Fatalf("unexpected name: %q", name)
	}
}

func TestEncodeComponent(t *testing.T) {
	if got := encodeComponent("a b+c"); got != "a%20b%2Bc" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}
