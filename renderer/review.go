package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/revue"
)

// ReviewMarkdown renders the full accounting review document.
func ReviewMarkdown(r *revue.Review) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Revue comptable du SPV")
	fmt.Fprintln(&b)

	renderSummary(&b, r.Reconciliation)
	renderControls(&b, r.Reconciliation)
	renderConcordance(&b, r.Reconciliation)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderSignificant(w, r.Reconciliation) })
	renderMonthly(&b, r.Activity)
	renderTopEntries(&b, r.Activity)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderDiagnostics(w, r) })
	renderConclusion(&b, r.Reconciliation)

	return b.String()
}

func renderSummary(w io.Writer, rec *revue.Reconciliation) {
	bt, lt := rec.BalanceTotals, rec.LedgerTotals
	fmt.Fprintln(w, "## Synthèse")
	fmt.Fprintf(w, "- Total débit balance générale : %s\n", bt.Debit)
	fmt.Fprintf(w, "- Total crédit balance générale : %s\n", bt.Credit)
	fmt.Fprintf(w, "- Écart balance générale : %s\n", bt.Gap())
	fmt.Fprintf(w, "- Total débit grand livre : %s\n", lt.Debit)
	fmt.Fprintf(w, "- Total crédit grand livre : %s\n", lt.Credit)
	fmt.Fprintf(w, "- Écart grand livre : %s\n", lt.Gap())
	fmt.Fprintf(w, "- Nombre de comptes dans la balance : %d\n", bt.Accounts)
	fmt.Fprintf(w, "- Nombre de comptes dans le grand livre : %d\n", lt.Accounts)
	fmt.Fprintln(w)
}

func renderControls(w io.Writer, rec *revue.Reconciliation) {
	tol := rec.Config.Tolerance
	fmt.Fprintln(w, "## Contrôles automatiques")
	if rec.BalanceTotals.Balanced(tol) {
		fmt.Fprintln(w, "- ✅ Balance générale équilibrée")
	} else {
		fmt.Fprintln(w, "- ⚠️ La balance générale n'est pas équilibrée (écart supérieur au seuil toléré).")
	}
	if rec.LedgerTotals.Balanced(tol) {
		fmt.Fprintln(w, "- ✅ Grand livre équilibré")
	} else {
		fmt.Fprintln(w, "- ⚠️ Le grand livre présente un déséquilibre (débit ≠ crédit).")
	}
	if rec.Coherent() {
		fmt.Fprintln(w, "- ✅ Cohérence globale balance / grand livre")
	} else {
		fmt.Fprintln(w, "- ⚠️ Les soldes globaux de la balance et du grand livre diffèrent."+
			" Vérifiez les périodes et les filtres d'export.")
	}
	fmt.Fprintln(w)
}

func renderConcordance(w io.Writer, rec *revue.Reconciliation) {
	fmt.Fprintln(w, "## Concordance balance / grand livre")

	variances := rec.Variances()
	if len(variances) == 0 {
		fmt.Fprintln(w, "Aucune différence détectée entre la balance et le grand livre.")
	} else {
		rows := make([][]string, 0, len(variances))
		for _, c := range variances {
			rows = append(rows, []string{
				c.Account,
				c.Label,
				c.Balance.Net().String(),
				c.Ledger.Net().String(),
				c.Delta.String(),
			})
		}
		table(w, []string{"Compte", "Intitulé", "Solde balance", "Solde grand livre", "Écart"}, rows)
	}

	if missing := rec.MissingInLedger(); len(missing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Comptes absents du grand livre :")
		rows := make([][]string, 0, len(missing))
		for _, c := range missing {
			rows = append(rows, []string{c.Account, c.Label, c.Balance.Net().String()})
		}
		table(w, []string{"Compte", "Intitulé", "Solde balance"}, rows)
	}
	if missing := rec.MissingInBalance(); len(missing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Comptes absents de la balance générale :")
		rows := make([][]string, 0, len(missing))
		for _, c := range missing {
			rows = append(rows, []string{c.Account, c.Label, c.Ledger.Net().String()})
		}
		table(w, []string{"Compte", "Intitulé", "Solde grand livre"}, rows)
	}
	fmt.Fprintln(w)
}

func renderSignificant(w io.Writer, rec *revue.Reconciliation) bool {
	variances := rec.Variances()
	if len(variances) == 0 {
		return false
	}
	fmt.Fprintln(w, "### Écarts significatifs")
	rows := make([][]string, 0, len(variances))
	for _, c := range variances {
		rows = append(rows, []string{c.Account, c.Label, c.Delta.String()})
	}
	table(w, []string{"Compte", "Intitulé", "Écart"}, rows)
	fmt.Fprintln(w)
	return true
}

func renderMonthly(w io.Writer, activity *revue.Activity) {
	fmt.Fprintln(w, "## Activité mensuelle du grand livre")
	if len(activity.Months) == 0 {
		fmt.Fprintln(w, "_Aucune écriture trouvée dans le grand livre._")
	} else {
		rows := make([][]string, 0, len(activity.Months))
		for _, m := range activity.Months {
			rows = append(rows, []string{
				m.Month.String(),
				m.Debit.String(),
				m.Credit.String(),
				m.Net().String(),
			})
		}
		table(w, []string{"Mois", "Débit", "Crédit", "Solde"}, rows)
	}
	if activity.Undated > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d écriture(s) sans date exploitable, exclues du découpage mensuel.\n", activity.Undated)
	}
	fmt.Fprintln(w)
}

func renderTopEntries(w io.Writer, activity *revue.Activity) {
	fmt.Fprintln(w, "## Écritures les plus significatives")
	if len(activity.Top) == 0 {
		fmt.Fprintln(w, "_Grand livre vide._")
		fmt.Fprintln(w)
		return
	}
	rows := make([][]string, 0, len(activity.Top))
	for _, e := range activity.Top {
		rows = append(rows, []string{
			frDate(e.Date),
			e.Account,
			e.Label,
			e.Description,
			e.Debit.String(),
			e.Credit.String(),
		})
	}
	table(w, []string{"Date", "Compte", "Libellé", "Description", "Débit", "Crédit"}, rows)
	fmt.Fprintln(w)
}

func renderDiagnostics(w io.Writer, r *revue.Review) bool {
	if len(r.BalanceDiags) == 0 && len(r.LedgerDiags) == 0 {
		return false
	}
	fmt.Fprintln(w, "## Lignes ignorées lors de l'import")
	for _, d := range r.BalanceDiags {
		fmt.Fprintf(w, "- balance, ligne %d : %s\n", d.Line, d.Reason)
	}
	for _, d := range r.LedgerDiags {
		fmt.Fprintf(w, "- grand livre, ligne %d : %s\n", d.Line, d.Reason)
	}
	fmt.Fprintln(w)
	return true
}

func renderConclusion(w io.Writer, rec *revue.Reconciliation) {
	if len(rec.Variances()) > 0 {
		fmt.Fprintln(w, "## Recommandations")
		fmt.Fprintln(w, "- Analyser les comptes listés dans les écarts significatifs pour identifier"+
			" les écritures manquantes ou mal ventilées.")
		fmt.Fprintln(w, "- Vérifier les exports sources (période, filtres, devise) afin de comprendre"+
			" les divergences observées.")
		fmt.Fprintln(w, "- Documenter les ajustements nécessaires et préparer les écritures de"+
			" correction avant clôture.")
		return
	}
	fmt.Fprintln(w, "## Conclusion")
	fmt.Fprintln(w, "Les contrôles effectués n'ont pas mis en évidence d'anomalies majeures entre"+
		" la balance générale et le grand livre.")
}
