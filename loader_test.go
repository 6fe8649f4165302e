package revue

import (
	"embed"
	"errors"
	"strings"
	"testing"
)

//go:embed testdata/*.csv
var testdataFS embed.FS

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := testdataFS.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return data
}

func TestLoadBalance(t *testing.T) {
	balance, diags, err := LoadBalance("balance.csv", strings.NewReader(string(fixture(t, "balance.csv"))))
	if err != nil {
		t.Fatalf("LoadBalance() error = %v", err)
	}

	// 101, 401 (merged), 512. The blank row is ignored, the "abc" amount is a diagnostic.
	if got, want := balance.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := len(diags), 1; got != want {
		t.Fatalf("diags = %v, want %d diagnostic", diags, want)
	}
	if got, want := diags[0].Line, 7; got != want {
		t.Errorf("diags[0].Line = %d, want %d", got, want)
	}

	totals := balance.Aggregate()
	if got, want := totals["401"].Credit, amt("1500"); !got.Equal(want) {
		t.Errorf("account 401 credit = %s, want %s (duplicates merged by summation)", got, want)
	}
	if got, want := totals["401"].Label, "Fournisseurs"; got != want {
		t.Errorf("account 401 label = %q, want %q", got, want)
	}
	if got, want := totals["101"].Credit, amt("5000"); !got.Equal(want) {
		t.Errorf("account 101 credit = %s, want %s", got, want)
	}
	if got, want := totals["512"].Debit, amt("6500"); !got.Equal(want) {
		t.Errorf("account 512 debit = %s, want %s", got, want)
	}
}

func TestLoadLedger(t *testing.T) {
	ledger, diags, err := LoadLedger("ledger.csv", strings.NewReader(string(fixture(t, "ledger.csv"))))
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	if got, want := ledger.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	// The unparsable date is a skipped-row diagnostic, not a fatal error.
	if got, want := len(diags), 1; got != want {
		t.Fatalf("diags = %v, want %d diagnostic", diags, want)
	}
	if got, want := diags[0].Line, 4; got != want {
		t.Errorf("diags[0].Line = %d, want %d", got, want)
	}

	first := ledger.Entries()[0]
	if got, want := first.Date.String(), "2024-01-15"; got != want {
		t.Errorf("first entry date = %s, want %s", got, want)
	}
	if got, want := first.Journal, "BQ"; got != want {
		t.Errorf("first entry journal = %q, want %q", got, want)
	}
	if got, want := first.Reference, "V-001"; got != want {
		t.Errorf("first entry reference = %q, want %q", got, want)
	}

	totals := ledger.Aggregate()
	if got, want := totals["512"].Debit, amt("5000"); !got.Equal(want) {
		t.Errorf("account 512 debit = %s, want %s", got, want)
	}
	if got, want := totals["512"].Credit, amt("250.50"); !got.Equal(want) {
		t.Errorf("account 512 credit = %s, want %s", got, want)
	}
}

func TestLoadBalance_ZeroUsableRowsIsLoadError(t *testing.T) {
	_, _, err := LoadBalance("empty.csv", strings.NewReader(string(fixture(t, "empty.csv"))))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("LoadBalance() error = %v, want *LoadError", err)
	}
}

func TestLoadBalance_MissingColumnIsSchemaError(t *testing.T) {
	in := "Compte,Libellé,Débit\n401,Fournisseurs,100\n"
	_, _, err := LoadBalance("bad.csv", strings.NewReader(in))
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("LoadBalance() error = %v, want *SchemaError", err)
	}
	if serr.Field != FieldCredit {
		t.Errorf("SchemaError.Field = %q, want %q", serr.Field, FieldCredit)
	}
}

func TestLoadBalance_BOMAndCommaDelimiter(t *testing.T) {
	in := "\ufeffaccount,label,debit,credit\n512,Banque,100.00,0\n"
	balance, diags, err := LoadBalance("bom.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadBalance() error = %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %v, want none", diags)
	}
	if got, want := balance.Entries()[0].Account, "512"; got != want {
		t.Errorf("account = %q, want %q (BOM not stripped?)", got, want)
	}
}

func TestLoadLedgerIn_FormatPriority(t *testing.T) {
	in := "date,compte,libelle,description,debit,credit\n" +
		"01/02/2024,512,Banque,x,10,0\n"

	// Month-first priority resolves the ambiguous token the other way.
	ledger, _, err := LoadLedgerIn("us.csv", strings.NewReader(in), []string{"01/02/2006"})
	if err != nil {
		t.Fatalf("LoadLedgerIn() error = %v", err)
	}
	if got, want := ledger.Entries()[0].Date.String(), "2024-01-02"; got != want {
		t.Errorf("date = %s, want %s (month-first priority)", got, want)
	}
}

func TestLoadLedger_AllRowsFailingIsLoadError(t *testing.T) {
	in := "date,compte,libelle,description,debit,credit\n" +
		"nope,512,Banque,x,10,0\n" +
		"2024-01-15,512,Banque,x,abc,0\n"
	_, diags, err := LoadLedger("bad.csv", strings.NewReader(in))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("LoadLedger() error = %v, want *LoadError", err)
	}
	if got, want := len(diags), 2; got != want {
		t.Errorf("diags = %v, want %d", diags, want)
	}
	if got, want := lerr.Skipped, 2; got != want {
		t.Errorf("LoadError.Skipped = %d, want %d", got, want)
	}
}
