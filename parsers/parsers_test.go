package parsers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"korea-realestate/models"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func kindOf(err error) string {
	var fe *models.FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

func int64p(n int64) *int64 { return &n }

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"82,500", 82500, true},
		{" 1,200 ", 1200, true},
		{"84.97", 84.97, true},
		{"-1", -1, true},
		{"0", 0, true},
		{"", 0, false},
		{"없음", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{json.Number("12"), 12},
		{"34", 34},
		{"7.0", 7},
		{float64(3), 3},
		{"n/a", 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := CoerceInt(tt.in); got != tt.want {
			t.Errorf("CoerceInt(%#v) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestExtractListItems(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantCount int
		wantTotal int
		wantKind  string
	}{
		{
			name:      "list",
			payload:   `{"response":{"header":{"resultCode":"000"},"body":{"items":{"item":[{"aptNm":"A"},{"aptNm":"B"}]},"totalCount":"2"}}}`,
			wantCount: 2, wantTotal: 2,
		},
		{
			name:      "single object",
			payload:   `{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":{"aptNm":"A"}},"totalCount":1}}}`,
			wantCount: 1, wantTotal: 1,
		},
		{
			name:    "empty string items",
			payload: `{"response":{"header":{"resultCode":"000"},"body":{"items":"","totalCount":0}}}`,
		},
		{
			name:     "error code",
			payload:  `{"response":{"header":{"resultCode":"30","resultMsg":"SERVICE KEY IS NOT REGISTERED ERROR."}}}`,
			wantKind: models.KindAPI,
		},
		{
			name:     "items absent",
			payload:  `{"response":{"header":{"resultCode":"000"},"body":{"totalCount":0}}}`,
			wantKind: models.KindParse,
		},
		{
			name:     "not an object",
			payload:  `[1,2,3]`,
			wantKind: models.KindParse,
		},
		{
			name:     "unknown envelope",
			payload:  `{"result":"ok"}`,
			wantKind: models.KindParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ExtractListItems(decode(t, tt.payload))
			if tt.wantKind != "" {
				if kindOf(err) != tt.wantKind {
					t.Fatalf("error = %v; want kind %s", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != tt.wantCount || page.TotalCount != tt.wantTotal {
				t.Errorf("got %d items / total %d; want %d / %d",
					len(page.Items), page.TotalCount, tt.wantCount, tt.wantTotal)
			}
			if page.Items == nil {
				t.Error("items must never be nil")
			}
		})
	}
}

func TestExtractOnbid(t *testing.T) {
	ok := `{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL SERVICE."},"body":{"items":{"item":[{"cltrNm":"토지"}]},"totalCount":"1"}}}`
	page, err := ExtractOnbid(decode(t, ok))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.TotalCount != 1 {
		t.Errorf("got %d items / total %d", len(page.Items), page.TotalCount)
	}

	bad := `{"response":{"header":{"resultCode":"99","resultMsg":"ERR"},"body":{"items":{"item":[{"cltrNm":"x"}]}}}}`
	_, err = ExtractOnbid(decode(t, bad))
	var fe *models.FetchError
	if !errors.As(err, &fe) || fe.Kind != models.KindAPI || fe.Code != "99" || fe.Message != "Onbid API error" {
		t.Errorf("result code 99 = %v; want api_error code 99", err)
	}

	noCode := `{"response":{"body":{"items":{"item":[{"cltrNm":"x"}]},"totalCount":1}}}`
	page, err = ExtractOnbid(decode(t, noCode))
	if err != nil {
		t.Fatalf("missing result code: unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.TotalCount != 1 {
		t.Errorf("missing result code: got %d items / total %d", len(page.Items), page.TotalCount)
	}

	if _, err := ExtractOnbid(decode(t, `{"response":{"header":{"resultCode":"00"}}}`)); kindOf(err) != models.KindParse {
		t.Errorf("missing body = %v; want parse_error", err)
	}
}

func TestParseOdcloudPage(t *testing.T) {
	page, err := ParseOdcloudPage(decode(t, `{"page":"2","perPage":"10","totalCount":"35","data":[{"HOUSE_NM":"래미안"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 2 || page.PerPage != 10 || page.TotalCount != 35 || len(page.Items) != 1 {
		t.Errorf("page = %+v", page)
	}

	page, err = ParseOdcloudPage(decode(t, `{"page":"x","perPage":null,"totalCount":0,"data":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 0 || page.PerPage != 0 || len(page.Items) != 0 {
		t.Errorf("coerced page = %+v", page)
	}

	if _, err := ParseOdcloudPage(decode(t, `{"code":-4,"msg":"등록되지 않은 인증키 입니다."}`)); kindOf(err) != models.KindAPI {
		t.Errorf("gateway error = %v; want api_error", err)
	}
	if _, err := ParseOdcloudPage(decode(t, `{"page":1}`)); kindOf(err) != models.KindParse {
		t.Errorf("missing data = %v; want parse_error", err)
	}
}

func TestParseAptTrade(t *testing.T) {
	items := []models.Item{
		{
			"aptNm": "래미안  푸르지오", "umdNm": "아현동", "excluUseAr": json.Number("84.97"),
			"floor": "12", "dealAmount": " 152,000", "dealYear": json.Number("2025"),
			"dealMonth": "1", "dealDay": "9", "buildYear": "2014", "dealingGbn": "중개거래",
		},
		{"aptNm": "빈값"},
	}

	got := ParseAptTrade(items)
	want := []models.Record{
		{
			AptName: "래미안 푸르지오", Dong: "아현동", AreaSqm: 84.97, Floor: 12,
			PriceTenK: int64p(152000), TradeDate: "2025-01-09", BuildYear: 2014, DealType: "중개거래",
		},
		{AptName: "빈값"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseAptTrade mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRentKeepsZeroMonthlyRent(t *testing.T) {
	got := ParseOffiRent([]models.Item{{"offiNm": "오피스텔", "deposit": "20,000", "monthlyRent": "0"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	r := got[0]
	if r.UnitName != "오피스텔" || models.Amount(r.DepositTenK) != 20000 {
		t.Errorf("record = %+v", r)
	}
	if r.MonthlyRentTenK == nil || *r.MonthlyRentTenK != 0 {
		t.Errorf("monthly rent should be reported as 0, got %v", r.MonthlyRentTenK)
	}
}

func TestParseCommercialTrade(t *testing.T) {
	got := ParseCommercialTrade([]models.Item{{
		"buildingType": "집합", "buildingUse": "제2종근린생활", "landUse": "일반상업",
		"buildingAr": "45.5", "shareDealingType": "", "dealAmount": "35,000",
	}})
	want := []models.Record{{
		BuildingType: "집합", BuildingUse: "제2종근린생활", LandUse: "일반상업",
		BuildingAr: 45.5, PriceTenK: int64p(35000),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseCommercialTrade mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSingleUsesTotalFloorArea(t *testing.T) {
	got := ParseSingleTrade([]models.Item{{"houseType": "단독", "totalFloorAr": "120.3", "floor": "2"}})
	if got[0].AreaSqm != 120.3 || got[0].Floor != 0 || got[0].HouseType != "단독" {
		t.Errorf("record = %+v", got[0])
	}
}
