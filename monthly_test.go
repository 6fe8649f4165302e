package revue

import (
	"testing"

	"github.com/etnz/revue/date"
)

func TestSummarize_MonthlyTotals(t *testing.T) {
	ledger := testLedger(
		LedgerEntry{Date: date.New(2024, 1, 10), Account: "512", Debit: amt("100")},
		LedgerEntry{Date: date.New(2024, 1, 25), Account: "512", Credit: amt("30")},
		LedgerEntry{Date: date.New(2024, 2, 5), Account: "606", Debit: amt("50")},
	)

	activity := Summarize(ledger, 10)
	if got, want := len(activity.Months), 2; got != want {
		t.Fatalf("len(Months) = %d, want %d", got, want)
	}

	jan := activity.Months[0]
	if got, want := jan.Month.String(), "2024-01"; got != want {
		t.Errorf("first month = %s, want %s (chronological order)", got, want)
	}
	if got, want := jan.Debit, amt("100"); !got.Equal(want) {
		t.Errorf("january debit = %s, want %s", got, want)
	}
	if got, want := jan.Credit, amt("30"); !got.Equal(want) {
		t.Errorf("january credit = %s, want %s", got, want)
	}
	if got, want := jan.Entries, 2; got != want {
		t.Errorf("january entries = %d, want %d", got, want)
	}

	feb := activity.Months[1]
	if got, want := feb.Net(), amt("50"); !got.Equal(want) {
		t.Errorf("february net = %s, want %s", got, want)
	}
}

func TestSummarize_UndatedBucket(t *testing.T) {
	ledger := testLedger(
		LedgerEntry{Date: date.New(2024, 1, 10), Account: "512", Debit: amt("100")},
		LedgerEntry{Account: "471", Debit: amt("10")}, // zero date
	)

	activity := Summarize(ledger, 10)
	if got, want := activity.Undated, 1; got != want {
		t.Errorf("Undated = %d, want %d", got, want)
	}
	if got, want := len(activity.Months), 1; got != want {
		t.Fatalf("len(Months) = %d, want %d", got, want)
	}
	// The undated entry lands in no month total.
	if got, want := activity.Months[0].Debit, amt("100"); !got.Equal(want) {
		t.Errorf("month debit = %s, want %s", got, want)
	}
}

func TestSummarize_TopEntries(t *testing.T) {
	ledger := testLedger(
		LedgerEntry{Date: date.New(2024, 1, 10), Account: "606", Debit: amt("10")},
		LedgerEntry{Date: date.New(2024, 1, 11), Account: "512", Credit: amt("500")},
		LedgerEntry{Date: date.New(2024, 1, 12), Account: "401", Debit: amt("250")},
		LedgerEntry{Date: date.New(2024, 1, 13), Account: "628", Credit: amt("40")},
	)

	activity := Summarize(ledger, 2)
	if got, want := len(activity.Top), 2; got != want {
		t.Fatalf("len(Top) = %d, want %d", got, want)
	}
	// Magnitude, not sign, drives the ranking.
	if got, want := activity.Top[0].Account, "512"; got != want {
		t.Errorf("Top[0] = %s, want %s", got, want)
	}
	if got, want := activity.Top[1].Account, "401"; got != want {
		t.Errorf("Top[1] = %s, want %s", got, want)
	}
}

func TestSummarize_TopTieBreak(t *testing.T) {
	ledger := testLedger(
		LedgerEntry{Date: date.New(2024, 2, 1), Account: "606", Debit: amt("100")},
		LedgerEntry{Date: date.New(2024, 1, 1), Account: "628", Debit: amt("100")},
	)
	activity := Summarize(ledger, 10)
	// Equal magnitudes: earlier date first.
	if got, want := activity.Top[0].Account, "628"; got != want {
		t.Errorf("Top[0] = %s, want %s", got, want)
	}
}

func TestSummarize_EmptyLedger(t *testing.T) {
	activity := Summarize(NewLedger(), 5)
	if len(activity.Months) != 0 || len(activity.Top) != 0 || activity.Undated != 0 {
		t.Errorf("Summarize(empty) = %+v, want empty activity", activity)
	}
}
