package revue

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/revue/date"
	"github.com/shopspring/decimal"
)

// PartyInfo identifies one signatory of the advance agreement.
type PartyInfo struct {
	Name                string `json:"name"`
	LegalForm           string `json:"legal_form"`
	ShareCapital        string `json:"share_capital"`
	RegistrationCity    string `json:"registration_city"`
	RegistrationNumber  string `json:"registration_number"`
	Address             string `json:"address"`
	Representative      string `json:"representative"`
	RepresentativeTitle string `json:"representative_title"`
}

// AdvanceTerms describe the advance granted by the lender.
type AdvanceTerms struct {
	Purpose          string    `json:"purpose"`
	Amount           Amount    `json:"amount"`
	Currency         string    `json:"currency"`
	AvailabilityDate date.Date `json:"availability_date"`
	RepaymentDate    date.Date `json:"repayment_date"`

	// InterestRate is the fixed annual rate in percent. Nil means the
	// advance is gratuitous, unless RemunerationDescription says otherwise.
	InterestRate            *decimal.Decimal `json:"interest_rate,omitempty"`
	RemunerationDescription string           `json:"remuneration_description,omitempty"`

	RepaymentTerms        string `json:"repayment_terms,omitempty"`
	TerminationConditions string `json:"termination_conditions,omitempty"`
	ConfidentialityClause string `json:"confidentiality_clause,omitempty"`
	GoverningLaw          string `json:"governing_law,omitempty"`
}

// Agreement bundles everything needed to draft a current-account advance
// agreement.
type Agreement struct {
	Lender        PartyInfo    `json:"lender"`
	Borrower      PartyInfo    `json:"borrower"`
	Terms         AdvanceTerms `json:"terms"`
	SignatureCity string       `json:"signature_city"`
	SignatureDate date.Date    `json:"signature_date"`
}

// Boilerplate defaults of the agreement terms.
const (
	defaultRepaymentTerms = "L'avance est remboursable à tout moment à la demande du prêteur."

	defaultTermination = "Chacune des parties pourra mettre fin à la présente convention moyennant " +
		"un préavis de 15 jours par lettre recommandée."

	defaultConfidentiality = "Les informations échangées dans le cadre de la présente convention sont " +
		"confidentielles et ne peuvent être divulguées qu'avec l'accord écrit de l'autre partie."

	defaultGoverningLaw = "Droit français"
)

// LoadAgreement decodes an agreement from its JSON description, fills the
// boilerplate defaults and validates it.
func LoadAgreement(r io.Reader) (*Agreement, error) {
	var a Agreement
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decoding agreement: %w", err)
	}
	a.fillDefaults()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Agreement) fillDefaults() {
	t := &a.Terms
	if t.Currency == "" {
		t.Currency = "EUR"
	}
	if t.RepaymentTerms == "" {
		t.RepaymentTerms = defaultRepaymentTerms
	}
	if t.TerminationConditions == "" {
		t.TerminationConditions = defaultTermination
	}
	if t.ConfidentialityClause == "" {
		t.ConfidentialityClause = defaultConfidentiality
	}
	if t.GoverningLaw == "" {
		t.GoverningLaw = defaultGoverningLaw
	}
	if a.SignatureDate.IsZero() {
		a.SignatureDate = date.Today()
	}
}

// Validate checks the agreement for the mistakes a template cannot absorb.
func (a *Agreement) Validate() error {
	if a.Lender.Name == "" {
		return fmt.Errorf("lender name is required")
	}
	if a.Borrower.Name == "" {
		return fmt.Errorf("borrower name is required")
	}
	if !a.Terms.Amount.IsPositive() {
		return fmt.Errorf("advance amount must be positive")
	}
	if a.Terms.AvailabilityDate.IsZero() || a.Terms.RepaymentDate.IsZero() {
		return fmt.Errorf("availability and repayment dates are required")
	}
	if a.Terms.RepaymentDate.Before(a.Terms.AvailabilityDate) {
		return fmt.Errorf("repayment date %s is before availability date %s",
			a.Terms.RepaymentDate, a.Terms.AvailabilityDate)
	}
	if a.SignatureCity == "" {
		return fmt.Errorf("signature city is required")
	}
	return nil
}

// Remuneration returns the remuneration clause: the explicit description if
// any, the interest wording for a rated advance, or the gratuitous wording.
func (t AdvanceTerms) Remuneration() string {
	if t.RemunerationDescription != "" {
		return t.RemunerationDescription
	}
	if t.InterestRate == nil {
		return "L'avance est consentie à titre gratuit et ne porte pas intérêt."
	}
	rate := t.InterestRate.Round(2)
	return fmt.Sprintf("L'avance porte intérêt au taux annuel fixe de %s %% calculé sur la base "+
		"du nombre exact de jours écoulés sur 360 jours.", rate)
}
