package diag_test

import (
	"testing"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)
	sp := source.Span{File: 1, Start: 0, End: 1}

	if !bag.Add(diag.NewError(diag.LexUnknownChar, sp, "a")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownChar, sp, "b")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(diag.NewError(diag.LexUnknownChar, sp, "c")) {
		t.Fatal("add beyond cap accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(8)
	a := source.Span{File: 1, Start: 0, End: 2}
	b := source.Span{File: 1, Start: 4, End: 6}

	bag.Add(diag.NewError(diag.ExpEmptySequence, a, "first"))
	bag.Add(diag.NewError(diag.ExpEmptySequence, a, "repeat"))
	bag.Add(diag.NewError(diag.ExpEmptySequence, b, "other span"))
	bag.Add(diag.NewError(diag.ExpUnmatchedGroup, a, "other code"))

	bag.Dedup()
	if bag.Len() != 3 {
		t.Fatalf("Len after Dedup = %d, want 3", bag.Len())
	}
	if bag.Items()[0].Message != "first" {
		t.Errorf("kept %q, want the earliest duplicate", bag.Items()[0].Message)
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.ExpEmptySequence, source.Span{File: 1, Start: 9, End: 10}, "late"))
	bag.Add(diag.NewError(diag.ExpEmptySequence, source.Span{File: 1, Start: 2, End: 3}, "early"))

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Errorf("order = %q, %q; want early, late", items[0].Message, items[1].Message)
	}
}
