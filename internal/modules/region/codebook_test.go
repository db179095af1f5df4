package region

import (
	"errors"
	"reflect"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Toshkent,Chorsu", "тошкент"},
		{"Samarqand,Bozor", "самарқанд"},
		{"  Andijon  ", "андижон"},
		{"Farg'ona", "фарғона"},
		{"Fargʻona,Markaz", "фарғона"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildCodebook_DeterministicOrder(t *testing.T) {
	a := BuildCodebook([]string{"тошкент", "андижон", "самарқанд"})
	b := BuildCodebook([]string{"самарқанд", "тошкент", "андижон", "тошкент"})
	if !reflect.DeepEqual(a.Names, b.Names) {
		t.Errorf("vocabulary depends on input order: %v vs %v", a.Names, b.Names)
	}
	if !reflect.DeepEqual(a.Index, b.Index) {
		t.Errorf("identifiers depend on input order: %v vs %v", a.Index, b.Index)
	}
}

func TestCodebook_EncodeInjective(t *testing.T) {
	cb := BuildCodebook([]string{"тошкент", "андижон", "самарқанд", "фарғона"})
	seen := make(map[int]string)
	for _, name := range cb.Names {
		id, err := cb.Encode(name)
		if err != nil {
			t.Fatalf("Encode(%q) error = %v", name, err)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("identifier %d assigned to both %q and %q", id, prev, name)
		}
		seen[id] = name
	}
	if len(seen) != cb.Len() {
		t.Errorf("got %d distinct identifiers for %d regions", len(seen), cb.Len())
	}
}

func TestCodebook_EncodeUnknown(t *testing.T) {
	cb := BuildCodebook([]string{"тошкент"})
	if _, err := cb.Encode("марс"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("Encode(unknown) error = %v, want ErrUnknownRegion", err)
	}
}
