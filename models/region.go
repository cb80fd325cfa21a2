package models

// Region is one entry of the administrative hierarchy.
// Code is a 10-digit legal code: the 5-digit sigungu code followed by "00000".
// Province aggregates end in "00000000".
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// LawdCode returns the 5-digit code expected by the transaction endpoints.
func (r Region) LawdCode() string {
	if len(r.Code) < 5 {
		return r.Code
	}
	return r.Code[:5]
}

// IsDistrict reports whether the region is below province level.
func (r Region) IsDistrict() bool {
	return len(r.Code) >= 5 && r.Code[2:5] != "000"
}

// RegionMatches is the result of resolving free text. Disambiguating more
// than one match is the caller's job.
type RegionMatches struct {
	Matches []Region `json:"matches"`
}

// Unique returns the only match, if there is exactly one.
func (m RegionMatches) Unique() (Region, bool) {
	if len(m.Matches) != 1 {
		return Region{}, false
	}
	return m.Matches[0], true
}
