package revue

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field names a canonical column of an accounting export.
type Field string

const (
	FieldAccount     Field = "account"
	FieldLabel       Field = "label"
	FieldDebit       Field = "debit"
	FieldCredit      Field = "credit"
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldJournal     Field = "journal"
	FieldReference   Field = "reference"
)

// column binds a canonical field to the header synonyms that resolve it.
// Synonyms are stored in normalized form (see normalizeHeader).
type column struct {
	field    Field
	synonyms []string
	required bool
}

// Schema is the ordered configuration table mapping the canonical fields of
// one file kind onto the header synonyms that exports actually use.
type Schema struct {
	kind    string
	columns []column
}

// BalanceSchema describes a trial balance export: one row per account with
// debit and credit totals.
var BalanceSchema = Schema{
	kind: "balance",
	columns: []column{
		{FieldAccount, []string{"account", "compte", "numero", "no", "ncompte"}, true},
		{FieldLabel, []string{"label", "intitule", "libelle", "description"}, true},
		{FieldDebit, []string{"debit", "deb", "montantdebit", "debitmontant", "md"}, true},
		{FieldCredit, []string{"credit", "cred", "montantcredit", "creditmontant", "mc"}, true},
	},
}

// LedgerSchema describes a general ledger export: one row per accounting
// entry, chronological.
var LedgerSchema = Schema{
	kind: "ledger",
	columns: []column{
		{FieldDate, []string{"date", "dateecriture", "datedecriture", "valuedate"}, true},
		{FieldAccount, []string{"account", "compte", "numero", "no", "ncompte"}, true},
		{FieldLabel, []string{"label", "intitule", "libelle", "intitulesecondaire"}, true},
		{FieldDescription, []string{"description", "memo", "detail", "libellepiece", "commentaire", "piece"}, true},
		{FieldDebit, []string{"debit", "deb", "montantdebit", "md"}, true},
		{FieldCredit, []string{"credit", "cred", "montantcredit", "mc"}, true},
		{FieldJournal, []string{"journal", "codejournal"}, false},
		{FieldReference, []string{"reference", "numreference", "numpiece", "piece"}, false},
	},
}

// ColumnMap maps canonical fields to their column index in the source file.
type ColumnMap map[Field]int

// foldAccents removes combining marks, so "Libellé" folds to "Libelle".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader reduces a header cell to lowercase letters and digits,
// accent-folded, so that "N° compte", "num_compte" and "Compte" all compare
// equal to their synonym.
func normalizeHeader(value string) string {
	folded, _, err := transform.String(foldAccents, value)
	if err != nil {
		folded = value
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve maps the canonical fields of the schema onto the header row.
// Matching is case-insensitive, accent-insensitive and ignores punctuation.
// A required field with no matching header fails with a *SchemaError;
// unresolved optional fields are simply absent from the map.
func (s Schema) Resolve(header []string) (ColumnMap, error) {
	indexed := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if key == "" {
			continue
		}
		if _, taken := indexed[key]; !taken {
			indexed[key] = i
		}
	}

	resolved := make(ColumnMap, len(s.columns))
	for _, col := range s.columns {
		found := false
		for _, synonym := range col.synonyms {
			if i, ok := indexed[synonym]; ok {
				resolved[col.field] = i
				found = true
				break
			}
		}
		if !found && col.required {
			return nil, &SchemaError{Field: col.field, Header: header}
		}
	}
	return resolved, nil
}
