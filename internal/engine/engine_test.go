package engine

import (
	"testing"
	"unicode/utf8"
)

func validUTF8(b []byte) (bool, int64) {
	if utf8.Valid(b) {
		return true, 0
	}
	return false, 0
}

func TestBuildDictionary_FirstOccurrenceOrder(t *testing.T) {
	raw := [][]byte{[]byte("b"), []byte("a"), []byte("b"), []byte("c"), []byte("a")}
	d := BuildDictionary(raw, nil)
	if len(d.Unique) != 3 {
		t.Fatalf("len(Unique) = %d, want 3", len(d.Unique))
	}
	wantUnique := []string{"b", "a", "c"}
	for i, u := range d.Unique {
		if string(u) != wantUnique[i] {
			t.Fatalf("Unique[%d] = %q, want %q", i, u, wantUnique[i])
		}
	}
	wantPos := []int{0, 1, 0, 2, 1}
	for i, p := range d.Positions {
		if p != wantPos[i] {
			t.Fatalf("Positions[%d] = %d, want %d", i, p, wantPos[i])
		}
	}
}

func TestBuildDictionary_EqualContentEqualIdent(t *testing.T) {
	raw := [][]byte{[]byte("dup"), []byte("other"), []byte("dup"), []byte("dup")}
	d := BuildDictionary(raw, nil)
	if d.Positions[0] != d.Positions[2] || d.Positions[0] != d.Positions[3] {
		t.Fatalf("equal content must map to one ident: %v", d.Positions)
	}
	if d.Positions[0] == d.Positions[1] {
		t.Fatalf("distinct content must not share an ident: %v", d.Positions)
	}
}

func TestBuildDictionary_EmptyBufferIsAnEntry(t *testing.T) {
	raw := [][]byte{{}, []byte("a"), {}}
	d := BuildDictionary(raw, nil)
	if len(d.Unique) != 2 {
		t.Fatalf("len(Unique) = %d, want 2", len(d.Unique))
	}
	if d.Positions[0] != d.Positions[2] {
		t.Fatalf("empty buffers must share one ident: %v", d.Positions)
	}
}

func TestBuildDictionary_Degenerate(t *testing.T) {
	d := BuildDictionary(nil, nil)
	if len(d.Unique) != 0 || len(d.Positions) != 0 {
		t.Fatalf("empty input must produce empty outputs: %+v", d)
	}
}

func TestValidateDictionary_FailFastReturnsNoTexts(t *testing.T) {
	d := BuildDictionary([][]byte{[]byte("ok"), {0xFF}, []byte("later")}, nil)
	texts, bad := ValidateDictionary(d, validUTF8, false, nil)
	if texts != nil {
		t.Fatalf("expected nil texts on failure, got %v", texts)
	}
	if len(bad) != 1 || bad[0].Ident != 1 {
		t.Fatalf("expected single invalid entry with ident 1, got %v", bad)
	}
}

func TestValidateDictionary_CollectFindsAll(t *testing.T) {
	d := BuildDictionary([][]byte{{0xFF}, []byte("ok"), {0xFE}}, nil)
	texts, bad := ValidateDictionary(d, validUTF8, true, nil)
	if texts != nil {
		t.Fatalf("expected nil texts on failure, got %v", texts)
	}
	if len(bad) != 2 || bad[0].Ident != 0 || bad[1].Ident != 2 {
		t.Fatalf("unexpected invalid entries: %v", bad)
	}
}

func TestAssemble_LooksUpByIdent(t *testing.T) {
	texts := []string{"b", "a"}
	out := Assemble(texts, []int{0, 1, 0}, nil)
	want := []string{"b", "a", "b"}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestEvents_SequenceAcrossStages(t *testing.T) {
	var kinds []EventKind
	ev := func(e Event) { kinds = append(kinds, e.Kind) }

	d := BuildDictionary([][]byte{[]byte("a"), []byte("a")}, ev)
	texts, bad := ValidateDictionary(d, validUTF8, false, ev)
	if bad != nil {
		t.Fatalf("unexpected invalid entries: %v", bad)
	}
	Assemble(texts, d.Positions, ev)

	want := []EventKind{EventDictNew, EventDictDup, EventValidateOK, EventAssemble, EventAssemble}
	if len(kinds) != len(want) {
		t.Fatalf("len(kinds) = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %d, want %d", i, kinds[i], want[i])
		}
	}
}
