package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"
	"orcamentix/pkg"
)

var (
	ErrCapabilityDenied = errors.New("feature not available in current plan")
	ErrExportNotReady   = errors.New("quote has no client or items to export")
)

// IExportUseCase is the plan-gated export gateway: PDF generation plus the
// WhatsApp and e-mail share links, all driven by totals recomputed from the
// persisted items.
type IExportUseCase interface {
	GeneratePdf(ctx context.Context, quoteID string) (ExportFile, error)
	WhatsappLink(ctx context.Context, quoteID string) (string, error)
	EmailLink(ctx context.Context, quoteID string) (string, error)
}

type ExportFile struct {
	Name    string
	Content []byte
}

type ExportUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	accountRepo interfaces.IAccountRepository
	renderer    interfaces.IQuotePdfRenderer
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(quoteRepo interfaces.IQuoteRepository, accountRepo interfaces.IAccountRepository, renderer interfaces.IQuotePdfRenderer) *ExportUseCase {
	return &ExportUseCase{quoteRepo: quoteRepo, accountRepo: accountRepo, renderer: renderer}
}

// GeneratePdf renders the quote with the template of the account's plan.
// Every tier may export PDF; only the template richness differs. Unknown or
// legacy tiers fall back to the basic template.
func (u *ExportUseCase) GeneratePdf(ctx context.Context, quoteID string) (ExportFile, error) {
	q, acct, err := u.load(ctx, quoteID)
	if err != nil {
		return ExportFile{}, err
	}

	doc := interfaces.QuoteDocument{Quote: q, Totals: q.Totals()}
	tier := entities.NormalizeTier(acct.Plan)
	log.Printf("[export][pdf] rendering quote=%s template=%s", q.ID, tier)

	var content []byte
	switch tier {
	case entities.PlanPremium:
		content, err = u.renderer.RenderPremium(doc, acct.PdfCompany())
	case entities.PlanPlus:
		content, err = u.renderer.RenderPlus(doc, acct.PdfCompany())
	default:
		content, err = u.renderer.RenderBasic(doc)
	}
	if err != nil {
		return ExportFile{}, err
	}

	return ExportFile{Name: pdfFileName(q, time.Now()), Content: content}, nil
}

// WhatsappLink builds the pre-filled wa.me share URL. Blocked before any URL
// is constructed when the plan lacks the whatsapp capability.
func (u *ExportUseCase) WhatsappLink(ctx context.Context, quoteID string) (string, error) {
	q, acct, err := u.load(ctx, quoteID)
	if err != nil {
		return "", err
	}
	if err := requireWhatsapp(acct); err != nil {
		return "", err
	}
	return "https://wa.me/?text=" + encodeComponent(shareBody(q)), nil
}

// EmailLink builds the mailto URL reusing the WhatsApp body, addressed to
// the client's stored e-mail (possibly empty). Gated by the same capability
// as WhatsApp sharing.
func (u *ExportUseCase) EmailLink(ctx context.Context, quoteID string) (string, error) {
	q, acct, err := u.load(ctx, quoteID)
	if err != nil {
		return "", err
	}
	if err := requireWhatsapp(acct); err != nil {
		return "", err
	}
	subject := "Proposta - " + q.Cliente.Nome
	return "mailto:" + q.Cliente.Email +
		"?subject=" + encodeComponent(subject) +
		"&body=" + encodeComponent(shareBody(q)), nil
}

func (u *ExportUseCase) load(ctx context.Context, quoteID string) (entities.Quote, entities.Account, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, entities.Account{}, ErrQuoteNotFound
	}
	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.Account{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, entities.Account{}, ErrQuoteNotFound
	}
	if q.Cliente.Nome == "" || len(q.Itens) == 0 {
		return entities.Quote{}, entities.Account{}, ErrExportNotReady
	}

	acct, err := u.accountRepo.Get(ctx)
	if err != nil {
		return entities.Quote{}, entities.Account{}, err
	}
	if acct.Plan == "" {
		acct = entities.Account{Plan: string(entities.PlanBasic)}
	}
	return q, acct, nil
}

func requireWhatsapp(acct entities.Account) error {
	caps := acct.Caps
	if !caps.Complete() {
		caps = entities.ResolveCaps(acct.Plan)
	}
	if !caps.Whatsapp {
		log.Printf("[export][share] blocked: plan=%s lacks whatsapp capability", acct.Plan)
		return ErrCapabilityDenied
	}
	return nil
}

// shareBody is the deterministic multi-line text shared over WhatsApp and
// e-mail. Margin and discount lines appear only when non-zero; the
// observations block only when present.
func shareBody(q entities.Quote) string {
	totals := q.Totals()

	linhas := []string{
		"*Orçamentix*",
		clientLine(q.Cliente),
		"",
		"*Itens:*",
	}
	for _, it := range q.Itens {
		linhas = append(linhas, fmt.Sprintf("• %s — %s %s x %s = %s",
			it.Nome,
			formatQty(it.Qtd),
			it.Unidade,
			pkg.FormatBRL(it.Preco),
			pkg.FormatBRL(it.Preco*it.Qtd),
		))
	}
	linhas = append(linhas, "", "Subtotal: "+pkg.FormatBRL(totals.Subtotal))
	if q.Margem != 0 {
		linhas = append(linhas, fmt.Sprintf("Margem (%s%%): +%s", formatQty(q.Margem), pkg.FormatBRL(totals.MargemValor)))
	}
	if q.Desconto != 0 {
		linhas = append(linhas, fmt.Sprintf("Desconto (%s%%): -%s", formatQty(q.Desconto), pkg.FormatBRL(totals.DescontoValor)))
	}
	linhas = append(linhas, "*Total: "+pkg.FormatBRL(totals.Total)+"*")
	if q.Obs != "" {
		linhas = append(linhas, "\nObs: "+q.Obs)
	}
	return strings.Join(linhas, "\n")
}

func clientLine(c entities.ClientSnapshot) string {
	if c.Empresa != "" {
		return fmt.Sprintf("Cliente: %s (%s)", c.Nome, c.Empresa)
	}
	return "Cliente: " + c.Nome
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeComponent percent-encodes for URL embedding, with %20 for spaces so
// the text survives both wa.me and mailto bodies.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func pdfFileName(q entities.Quote, now time.Time) string {
	nome := q.Cliente.Nome
	if nome == "" {
		nome = "cliente"
	}
	nome = strings.NewReplacer("/", "-", "\\", "-").Replace(nome)
	return fmt.Sprintf("orcamento-%s-%d.pdf", nome, now.UnixMilli())
}
