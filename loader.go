package revue

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/revue/date"
)

// Diag is a skipped-row diagnostic: the 1-based line number of the rejected
// row and the reason it was rejected. Row-level failures never abort a load;
// they accumulate here so the review can report exactly what was dropped.
type Diag struct {
	Line   int
	Reason string
}

func (d Diag) String() string { return fmt.Sprintf("line %d: %s", d.Line, d.Reason) }

// ReadBalanceFile opens, loads and closes a trial balance CSV export.
func ReadBalanceFile(path string) (*Balance, []Diag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening balance file: %w", err)
	}
	defer f.Close()
	return LoadBalance(path, f)
}

// ReadLedgerFile opens, loads and closes a general ledger CSV export.
func ReadLedgerFile(path string) (*Ledger, []Diag, error) {
	return ReadLedgerFileIn(path, date.DefaultFormats)
}

// ReadLedgerFileIn is ReadLedgerFile with an explicit date format priority
// list.
func ReadLedgerFileIn(path string, formats []string) (*Ledger, []Diag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()
	return LoadLedgerIn(path, f, formats)
}

// LoadBalance reads a trial balance from r in a single pass.
//
// The header row is resolved once against BalanceSchema; each data row is
// parsed into a BalanceEntry. Rows with a blank account cell are ignored
// (padding and comment lines); rows with unparsable amounts are skipped with
// a diagnostic. Duplicate accounts are merged by summation. A load producing
// zero entries fails with a *LoadError.
func LoadBalance(name string, r io.Reader) (*Balance, []Diag, error) {
	rows, err := newCSVReader(r)
	if err != nil {
		return nil, nil, &LoadError{Path: name}
	}
	header, err := rows.Read()
	if err != nil {
		return nil, nil, &LoadError{Path: name}
	}
	cols, err := BalanceSchema.Resolve(header)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	balance := NewBalance()
	var diags []Diag
	seen := 0
	for line := 2; ; line++ {
		record, err := rows.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			diags = append(diags, csvDiag(line, err))
			continue
		}
		account := strings.TrimSpace(cell(record, cols, FieldAccount))
		if account == "" {
			continue // padding or comment line
		}
		seen++
		debit, err := ParseAmount(cell(record, cols, FieldDebit))
		if err != nil {
			diags = append(diags, Diag{Line: line, Reason: err.Error()})
			continue
		}
		credit, err := ParseAmount(cell(record, cols, FieldCredit))
		if err != nil {
			diags = append(diags, Diag{Line: line, Reason: err.Error()})
			continue
		}
		balance.Append(BalanceEntry{
			Account: account,
			Label:   strings.TrimSpace(cell(record, cols, FieldLabel)),
			Debit:   debit,
			Credit:  credit,
		})
	}

	if balance.Len() == 0 {
		return nil, diags, &LoadError{Path: name, Rows: seen, Skipped: len(diags)}
	}
	return balance, diags, nil
}

// LoadLedger reads a general ledger from r in a single pass, with the same
// skip-and-continue contract as LoadBalance. A row whose date does not match
// any format of date.DefaultFormats is skipped with a diagnostic.
func LoadLedger(name string, r io.Reader) (*Ledger, []Diag, error) {
	return LoadLedgerIn(name, r, date.DefaultFormats)
}

// LoadLedgerIn is LoadLedger with an explicit date format priority list:
// for every date cell the first matching layout wins.
func LoadLedgerIn(name string, r io.Reader, formats []string) (*Ledger, []Diag, error) {
	rows, err := newCSVReader(r)
	if err != nil {
		return nil, nil, &LoadError{Path: name}
	}
	header, err := rows.Read()
	if err != nil {
		return nil, nil, &LoadError{Path: name}
	}
	cols, err := LedgerSchema.Resolve(header)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	ledger := NewLedger()
	var diags []Diag
	seen := 0
	for line := 2; ; line++ {
		record, err := rows.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			diags = append(diags, csvDiag(line, err))
			continue
		}
		account := strings.TrimSpace(cell(record, cols, FieldAccount))
		if account == "" {
			continue
		}
		seen++
		on, err := date.ParseIn(formats, cell(record, cols, FieldDate))
		if err != nil {
			diags = append(diags, Diag{Line: line, Reason: err.Error()})
			continue
		}
		debit, err := ParseAmount(cell(record, cols, FieldDebit))
		if err != nil {
			diags = append(diags, Diag{Line: line, Reason: err.Error()})
			continue
		}
		credit, err := ParseAmount(cell(record, cols, FieldCredit))
		if err != nil {
			diags = append(diags, Diag{Line: line, Reason: err.Error()})
			continue
		}
		ledger.Append(LedgerEntry{
			Date:        on,
			Account:     account,
			Label:       strings.TrimSpace(cell(record, cols, FieldLabel)),
			Description: strings.TrimSpace(cell(record, cols, FieldDescription)),
			Debit:       debit,
			Credit:      credit,
			Journal:     strings.TrimSpace(cell(record, cols, FieldJournal)),
			Reference:   strings.TrimSpace(cell(record, cols, FieldReference)),
		})
	}

	if ledger.Len() == 0 {
		return nil, diags, &LoadError{Path: name, Rows: seen, Skipped: len(diags)}
	}
	return ledger, diags, nil
}

// cell returns the record cell for a canonical field, or "" when the field is
// unresolved (optional columns) or the row is short.
func cell(record []string, cols ColumnMap, field Field) string {
	i, ok := cols[field]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func csvDiag(line int, err error) Diag {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return Diag{Line: perr.Line, Reason: perr.Err.Error()}
	}
	return Diag{Line: line, Reason: err.Error()}
}

// newCSVReader wraps r with UTF-8 BOM stripping and delimiter detection:
// exports use either ";" or ",", decided by whichever is the more frequent in
// the header line.
func newCSVReader(r io.Reader) (*csv.Reader, error) {
	br := bufio.NewReader(r)

	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}

	head, err := br.Peek(4096)
	if len(head) == 0 {
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	firstLine := string(head)
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}

	cr := csv.NewReader(br)
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1 // short rows become empty cells, not errors
	cr.TrimLeadingSpace = true
	return cr, nil
}
