package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/revue"
)

func partyMarkdown(p revue.PartyInfo) string {
	return fmt.Sprintf("**%s**, %s au capital de %s, immatriculée au RCS de %s sous le numéro %s,"+
		" dont le siège social est situé %s, représentée par %s, en qualité de %s.",
		p.Name, p.LegalForm, p.ShareCapital, p.RegistrationCity, p.RegistrationNumber,
		p.Address, p.Representative, p.RepresentativeTitle)
}

// AgreementMarkdown renders a current-account advance agreement ready to share.
func AgreementMarkdown(a *revue.Agreement) string {
	var b strings.Builder
	terms := a.Terms
	amount := fmt.Sprintf("%s %s", terms.Amount, terms.Currency)

	fmt.Fprintln(&b, "# Convention d'avance en compte courant")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "**Entre les soussignés :**")
	fmt.Fprintf(&b, "- %s\n", partyMarkdown(a.Lender))
	fmt.Fprintf(&b, "- %s\n", partyMarkdown(a.Borrower))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Collectivement désignés les « Parties » et individuellement une « Partie ».")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Préambule")
	fmt.Fprintf(&b, "Le prêteur souhaite soutenir la trésorerie de l'emprunteur en mettant à sa"+
		" disposition une avance en compte courant afin de financer %s.\n", terms.Purpose)
	fmt.Fprintln(&b, "Les Parties se sont rapprochées pour formaliser les conditions de cette avance"+
		" conformément aux dispositions du Code de commerce.")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 1 – Objet")
	fmt.Fprintf(&b, "La présente convention a pour objet de fixer les modalités de l'avance en compte"+
		" courant consentie par %s au profit de %s.\n", a.Lender.Name, a.Borrower.Name)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 2 – Montant et mise à disposition")
	fmt.Fprintf(&b, "Le montant maximum de l'avance est fixé à %s. Elle sera mise à disposition de"+
		" l'emprunteur à compter du %s par simple transfert sur le compte bancaire habituel.\n",
		amount, frDate(terms.AvailabilityDate))
	fmt.Fprintln(&b, "L'avance est enregistrée en compte courant d'associé et pourra faire l'objet"+
		" de tirages successifs dans la limite du montant autorisé.")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 3 – Rémunération")
	fmt.Fprintln(&b, terms.Remuneration())
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 4 – Remboursement")
	fmt.Fprintf(&b, "L'emprunteur remboursera intégralement l'avance au plus tard le %s. %s\n",
		frDate(terms.RepaymentDate), terms.RepaymentTerms)
	fmt.Fprintln(&b, "Tout remboursement partiel viendra en priorité apurer les intérêts échus avant"+
		" d'imputer le capital restant dû.")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 5 – Déclarations et engagements")
	fmt.Fprintf(&b, "%s s'engage à informer sans délai %s de tout événement susceptible d'affecter"+
		" sa capacité à honorer ses engagements.\n", a.Borrower.Name, a.Lender.Name)
	fmt.Fprintln(&b, terms.ConfidentialityClause)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 6 – Résiliation")
	fmt.Fprintln(&b, terms.TerminationConditions)
	fmt.Fprintln(&b, "En cas de manquement grave par l'une des Parties, l'autre Partie pourra exiger"+
		" le remboursement immédiat de l'avance.")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Article 7 – Loi applicable et juridiction compétente")
	fmt.Fprintf(&b, "La présente convention est régie par le %s. Tout différend relatif à son"+
		" interprétation ou son exécution sera soumis aux tribunaux compétents du ressort de %s.\n",
		terms.GoverningLaw, a.SignatureCity)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Signatures")
	fmt.Fprintf(&b, "Fait à %s, le %s.\n", a.SignatureCity, frDate(a.SignatureDate))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Pour le prêteur")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Pour l'emprunteur")

	return b.String()
}
