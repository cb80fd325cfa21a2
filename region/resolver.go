package region

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"korea-realestate/models"
)

//go:embed regions.tsv
var regionsTSV string

// provinceAliases maps common short forms to the official province names.
var provinceAliases = map[string]string{
	"서울시":  "서울특별시",
	"부산시":  "부산광역시",
	"대구시":  "대구광역시",
	"인천시":  "인천광역시",
	"대전시":  "대전광역시",
	"울산시":  "울산광역시",
	"세종시":  "세종특별자치시",
	"강원도":  "강원특별자치도",
	"충북":   "충청북도",
	"충남":   "충청남도",
	"전북":   "전북특별자치도",
	"전라북도": "전북특별자치도",
	"전남":   "전라남도",
	"경북":   "경상북도",
	"경남":   "경상남도",
	"제주도":  "제주특별자치도",
}

// Resolver maps free-text place names to administrative regions. It holds
// only immutable data and is safe for concurrent use.
type Resolver struct {
	regions []models.Region
}

// NewResolver loads the built-in region table.
func NewResolver() *Resolver {
	regions, err := ParseTable(strings.NewReader(regionsTSV))
	if err != nil {
		panic(fmt.Sprintf("region: built-in table: %v", err))
	}
	return &Resolver{regions: regions}
}

// NewResolverFromTable builds a resolver over a caller-supplied table.
func NewResolverFromTable(regions []models.Region) *Resolver {
	return &Resolver{regions: append([]models.Region(nil), regions...)}
}

// ParseTable reads "code<TAB>full name" lines. Blank lines and lines
// starting with # are skipped.
func ParseTable(r io.Reader) ([]models.Region, error) {
	var regions []models.Region
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		code, name, ok := strings.Cut(text, "\t")
		if !ok || len(code) != 10 || !isDigits(code) {
			return nil, fmt.Errorf("line %d: malformed entry %q", line, text)
		}
		regions = append(regions, models.Region{Name: norm.NFC.String(strings.TrimSpace(name)), Code: code})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read region table: %w", err)
	}
	return regions, nil
}

// All returns every known region.
func (r *Resolver) All() []models.Region {
	return append([]models.Region(nil), r.regions...)
}

// Resolve returns every region matching text. A token matches when it is a
// substring of the region's full name, or a prefix of its code when the
// token is numeric. District-level matches win over province aggregates,
// and among several matches those naming a token as a whole name
// component win. No match is a validation_error.
func (r *Resolver) Resolve(text string) (models.RegionMatches, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return models.RegionMatches{}, models.NewValidationError("region name is required")
	}

	var matches []models.Region
	for _, reg := range r.regions {
		if matchesAll(reg, tokens) {
			matches = append(matches, reg)
		}
	}
	if len(matches) == 0 {
		return models.RegionMatches{}, models.NewValidationError("No region matches %q", strings.TrimSpace(text))
	}

	if len(matches) > 1 {
		matches = preferDistricts(matches)
	}
	if len(matches) > 1 {
		matches = preferExactComponents(matches, tokens)
	}
	return models.RegionMatches{Matches: matches}, nil
}

func tokenize(text string) []string {
	text = norm.NFC.String(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/'
	})
	for i, f := range fields {
		if alias, ok := provinceAliases[f]; ok {
			fields[i] = alias
		}
	}
	return fields
}

func matchesAll(reg models.Region, tokens []string) bool {
	for _, t := range tokens {
		if isDigits(t) {
			if !strings.HasPrefix(reg.Code, t) {
				return false
			}
			continue
		}
		if !strings.Contains(reg.Name, t) {
			return false
		}
	}
	return true
}

func preferDistricts(matches []models.Region) []models.Region {
	var districts []models.Region
	for _, m := range matches {
		if m.IsDistrict() {
			districts = append(districts, m)
		}
	}
	if len(districts) == 0 {
		return matches
	}
	return districts
}

func preferExactComponents(matches []models.Region, tokens []string) []models.Region {
	best := 0
	scores := make([]int, len(matches))
	for i, m := range matches {
		parts := strings.Fields(m.Name)
		for _, t := range tokens {
			for _, p := range parts {
				if p == t {
					scores[i]++
					break
				}
			}
		}
		if scores[i] > best {
			best = scores[i]
		}
	}
	if best == 0 {
		return matches
	}

	var kept []models.Region
	for i, m := range matches {
		if scores[i] == best {
			kept = append(kept, m)
		}
	}
	return kept
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
