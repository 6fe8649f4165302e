package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/revue"
	"github.com/etnz/revue/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func amt(s string) revue.Amount { return revue.A(decimal.RequireFromString(s)) }

func testReview(t *testing.T) *revue.Review {
	t.Helper()

	balance := revue.NewBalance()
	balance.Append(revue.BalanceEntry{Account: "101", Label: "Capital social", Credit: amt("5000")})
	balance.Append(revue.BalanceEntry{Account: "512", Label: "Banque", Debit: amt("5000")})
	balance.Append(revue.BalanceEntry{Account: "401", Label: "Fournisseurs", Credit: amt("100")})

	ledger := revue.NewLedger()
	ledger.Append(
		revue.LedgerEntry{Date: date.New(2024, 1, 15), Account: "512", Label: "Banque", Description: "Apport", Debit: amt("5000")},
		revue.LedgerEntry{Date: date.New(2024, 1, 15), Account: "101", Label: "Capital social", Description: "Apport", Credit: amt("5000")},
		revue.LedgerEntry{Date: date.New(2024, 2, 2), Account: "401", Label: "Fournisseurs", Description: "Facture", Credit: amt("250")},
	)

	return revue.NewReview(balance, nil, ledger,
		[]revue.Diag{{Line: 12, Reason: "invalid amount \"abc\""}},
		revue.DefaultConfig())
}

// headings parses the markdown and returns all heading texts, validating on
// the way that the renderer produced well-formed markdown.
func headings(t *testing.T, md string) []string {
	t.Helper()
	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(source))
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func TestReviewMarkdown_Sections(t *testing.T) {
	md := ReviewMarkdown(testReview(t))

	got := headings(t, md)
	want := []string{
		"Revue comptable du SPV",
		"Synthèse",
		"Contrôles automatiques",
		"Concordance balance / grand livre",
		"Écarts significatifs",
		"Activité mensuelle du grand livre",
		"Écritures les plus significatives",
		"Lignes ignorées lors de l'import",
		"Recommandations",
	}
	for _, heading := range want {
		if !contains(got, heading) {
			t.Errorf("rendered review misses heading %q (got %v)", heading, got)
		}
	}
}

func TestReviewMarkdown_Content(t *testing.T) {
	md := ReviewMarkdown(testReview(t))

	// The 401 variance (balance -100 vs ledger -250) shows up with its delta.
	if !strings.Contains(md, "| 401 |") {
		t.Errorf("variance table misses account 401:\n%s", md)
	}
	if !strings.Contains(md, "-150,00") {
		t.Errorf("variance table misses the delta -150,00:\n%s", md)
	}
	// Monthly activity lists both months.
	for _, month := range []string{"2024-01", "2024-02"} {
		if !strings.Contains(md, month) {
			t.Errorf("monthly table misses %s", month)
		}
	}
	// The skipped-row diagnostic is reported.
	if !strings.Contains(md, "ligne 12") {
		t.Errorf("diagnostics section misses the skipped row")
	}
}

func TestReviewMarkdown_CleanReviewConcludes(t *testing.T) {
	balance := revue.NewBalance()
	balance.Append(revue.BalanceEntry{Account: "512", Label: "Banque", Debit: amt("100"), Credit: amt("100")})
	ledger := revue.NewLedger()
	ledger.Append(revue.LedgerEntry{Date: date.New(2024, 1, 15), Account: "512", Debit: amt("100"), Credit: amt("100")})

	md := ReviewMarkdown(revue.NewReview(balance, nil, ledger, nil, revue.DefaultConfig()))
	if !contains(headings(t, md), "Conclusion") {
		t.Errorf("clean review should end with a Conclusion section")
	}
	if strings.Contains(md, "Écarts significatifs") {
		t.Errorf("clean review should not carry a significant variances section")
	}
}

func TestAgreementMarkdown(t *testing.T) {
	a := &revue.Agreement{
		Lender:        revue.PartyInfo{Name: "Holding Alpha", LegalForm: "SAS"},
		Borrower:      revue.PartyInfo{Name: "SPV Bravo", LegalForm: "SASU"},
		SignatureCity: "Paris",
		SignatureDate: date.New(2024, 1, 10),
	}
	a.Terms.Purpose = "l'acquisition d'un portefeuille de créances"
	a.Terms.Amount = amt("250000")
	a.Terms.Currency = "EUR"
	a.Terms.AvailabilityDate = date.New(2024, 1, 15)
	a.Terms.RepaymentDate = date.New(2025, 1, 15)

	md := AgreementMarkdown(a)
	got := headings(t, md)
	for _, heading := range []string{
		"Convention d'avance en compte courant",
		"Article 1 – Objet",
		"Article 7 – Loi applicable et juridiction compétente",
		"Signatures",
	} {
		if !contains(got, heading) {
			t.Errorf("agreement misses heading %q", heading)
		}
	}
	if !strings.Contains(md, "250 000,00 EUR") {
		t.Errorf("agreement misses the formatted amount:\n%s", md)
	}
	if !strings.Contains(md, "du 15/01/2024") {
		t.Errorf("agreement misses the availability date")
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
