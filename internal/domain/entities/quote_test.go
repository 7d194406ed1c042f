package entities

import (
	"testing"
	"time"
)

func TestComputeTotals(t *testing.T) {
	items := []QuoteItem{
		{Nome: "Pintura", Preco: 100, Qtd: 2},
		{Nome: "Reparo", Preco: 50, Qtd: 1},
	}

	t.Run("margin and discount applied over subtotal", func(t *testing.T) {
		totals := ComputeTotals(items, 10, 5)
		if totals.Subtotal != 250 {
			t.Fatalf("expected subtotal 250, got %v", totals.Subtotal)
		}
		if totals.MargemValor != 25 {
			t.Fatalf("expected margem 25, got %v", totals.MargemValor)
		}
		if totals.DescontoValor != 12.5 {
			t.Fatalf("expected desconto 12.5, got %v", totals.DescontoValor)
		}
		if totals.Total != 262.5 {
			t.Fatalf("expected total 262.5, got %v", totals.Total)
		}
	})

	t.Run("total clamps at zero when discount exceeds subtotal", func(t *testing.T) {
		totals := ComputeTotals(items, 10, 200)
		if totals.Total != 0 {
			t.Fatalf("expected clamped total 0, got %v", totals.Total)
		}
		// Intermediate values keep their real magnitude; only the total clamps.
		if totals.DescontoValor != 500 {
			t.Fatalf("expected desconto 500, got %v", totals.DescontoValor)
		}
	})

	t.Run("discount 150 with no margin clamps to exactly zero", func(t *testing.T) {
		totals := ComputeTotals(items, 0, 150)
		if totals.Total != 0 {
			t.Fatalf("expected total 0, got %v", totals.Total)
		}
	})

	t.Run("no items", func(t *testing.T) {
		totals := ComputeTotals(nil, 10, 5)
		if totals.Subtotal != 0 || totals.Total != 0 {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("subtotal is the sum of preco times qtd", func(t *testing.T) {
		mixed := []QuoteItem{
			{Preco: 35.5, Qtd: 10},
			{Preco: 420, Qtd: 0.5},
			{Preco: 120, Qtd: 3},
		}
		want := 35.5*10 + 420*0.5 + 120*3
		if got := ComputeTotals(mixed, 0, 0).Subtotal; got != want {
			t.Fatalf("expected subtotal %v, got %v", want, got)
		}
	})
}

func TestQuoteTotalsRecompute(t *testing.T) {
	// Persisted Subtotal/Total are snapshots; Totals() must always derive
	// from the items, even when the stored fields are stale.
	q := Quote{
		Itens:    []QuoteItem{{Preco: 100, Qtd: 2}},
		Margem:   10,
		Desconto: 0,
		Subtotal: 999,
		Total:    999,
	}
	totals := q.Totals()
	if totals.Subtotal != 200 || totals.Total != 220 {
		t.Fatalf("expected recomputed 200/220, got %+v", totals)
	}
}

func TestQuoteSnapshot(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := Quote{
		Status:   QuoteStatusEnviado,
		Itens:    []QuoteItem{{Nome: "Pintura", Preco: 100, Qtd: 2}},
		Margem:   10,
		Desconto: 5,
		Subtotal: 200,
		Total:    210,
	}

	rev := q.Snapshot(at)
	if rev.At != at {
		t.Fatalf("expected at %v, got %v", at, rev.At)
	}
	if rev.Prev.Status != QuoteStatusEnviado || rev.Prev.Subtotal != 200 || rev.Prev.Total != 210 {
		t.Fatalf("unexpected snapshot: %+v", rev.Prev)
	}

	// Snapshot items are copies, not aliases into the live quote.
	q.Itens[0].Qtd = 99
	if rev.Prev.Itens[0].Qtd != 2 {
		t.Fatalf("snapshot items alias the quote items")
	}
}

func TestQuoteClone(t *testing.T) {
	q := Quote{
		ID:     "q1",
		Itens:  []QuoteItem{{Nome: "Pintura", Qtd: 1}},
		History: []QuoteRevision{
			{Prev: RevisionSnapshot{Itens: []QuoteItem{{Nome: "Pintura", Qtd: 1}}, Total: 100}},
		},
	}

	clone := q.Clone()
	clone.Itens[0].Qtd = 5
	clone.History[0].Prev.Total = 1

	if q.Itens[0].Qtd != 1 {
		t.Fatalf("clone items alias the source")
	}
	if q.History[0].Prev.Total != 100 {
		t.Fatalf("clone history aliases the source")
	}
}

func TestQuoteStatusIsValid(t *testing.T) {
	valid := []QuoteStatus{QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusAprovado, QuoteStatusRejeitado}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if QuoteStatus("cancelado").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
