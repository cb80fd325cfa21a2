package region

import (
	"errors"
	"sort"
	"testing"

	"golang.org/x/text/unicode/norm"

	"korea-realestate/models"
)

func codes(m models.RegionMatches) []string {
	out := make([]string, 0, len(m.Matches))
	for _, r := range m.Matches {
		out = append(out, r.Code)
	}
	sort.Strings(out)
	return out
}

func TestResolveUnique(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		query    string
		wantCode string
		wantName string
	}{
		{"마포구", "1144000000", "서울특별시 마포구"},
		{"서울 강남구", "1168000000", "서울특별시 강남구"},
		{"경남 고성군", "4882000000", "경상남도 고성군"},
		{"수원시 영통구", "4111700000", "경기도 수원시 영통구"},
		{"11440", "1144000000", "서울특별시 마포구"},
		{"  세종  ", "3611000000", "세종특별자치시"},
	}

	for _, tt := range tests {
		m, err := r.Resolve(tt.query)
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", tt.query, err)
			continue
		}
		got, ok := m.Unique()
		if !ok {
			t.Errorf("Resolve(%q) = %d matches; want exactly one", tt.query, len(m.Matches))
			continue
		}
		if got.Code != tt.wantCode || got.Name != tt.wantName {
			t.Errorf("Resolve(%q) = %+v; want %s %s", tt.query, got, tt.wantCode, tt.wantName)
		}
		if got.LawdCode() != tt.wantCode[:5] {
			t.Errorf("LawdCode() = %q", got.LawdCode())
		}
	}
}

func TestResolveAmbiguousKeepsAll(t *testing.T) {
	r := NewResolver()

	m, err := r.Resolve("고성군")
	if err != nil {
		t.Fatal(err)
	}
	if got := codes(m); len(got) != 2 || got[0] != "4882000000" || got[1] != "5182000000" {
		t.Errorf("Resolve(고성군) = %v", got)
	}

	m, err = r.Resolve("중구")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Matches) != 6 {
		t.Errorf("Resolve(중구) = %d matches; want 6", len(m.Matches))
	}
	if _, ok := m.Unique(); ok {
		t.Error("ambiguous result must not be unique")
	}
}

func TestResolvePrefersWholeComponent(t *testing.T) {
	m, err := NewResolver().Resolve("서구")
	if err != nil {
		t.Fatal(err)
	}
	for _, reg := range m.Matches {
		if reg.Code[:5] == "11500" || reg.Code[:5] == "26440" || reg.Code[:5] == "41287" {
			t.Errorf("Resolve(서구) kept %s", reg.Name)
		}
	}
	if len(m.Matches) != 5 {
		t.Errorf("Resolve(서구) = %d matches; want 5", len(m.Matches))
	}
}

func TestResolvePrefersDistricts(t *testing.T) {
	m, err := NewResolver().Resolve("충북")
	if err != nil {
		t.Fatal(err)
	}
	for _, reg := range m.Matches {
		if !reg.IsDistrict() {
			t.Errorf("province aggregate %s kept alongside districts", reg.Name)
		}
	}
}

func TestResolveSingleAggregateIsReturned(t *testing.T) {
	r := NewResolverFromTable([]models.Region{
		{Name: "제주특별자치도", Code: "5000000000"},
		{Name: "서울특별시 마포구", Code: "1144000000"},
	})
	m, err := r.Resolve("제주")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := m.Unique()
	if !ok || got.Code != "5000000000" {
		t.Errorf("Resolve(제주) = %+v", m)
	}
}

func TestResolveNormalizesInput(t *testing.T) {
	m, err := NewResolver().Resolve(norm.NFD.String("마포구"))
	if err != nil {
		t.Fatalf("decomposed input: %v", err)
	}
	if _, ok := m.Unique(); !ok {
		t.Errorf("decomposed input matched %d regions", len(m.Matches))
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, q := range []string{"없는동네구", "", "   "} {
		_, err := NewResolver().Resolve(q)
		var fe *models.FetchError
		if !errors.As(err, &fe) || fe.Kind != models.KindValidation {
			t.Errorf("Resolve(%q) = %v; want validation_error", q, err)
		}
	}
}
