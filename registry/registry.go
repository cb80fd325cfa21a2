package registry

import (
	"strings"

	"korea-realestate/models"
	"korea-realestate/parsers"
)

// Endpoint is one upstream URL paired with the parser for its items.
type Endpoint struct {
	URL   string
	Parse parsers.RecordParser
}

// EndpointSet is the endpoint family of one housing type. Every set has a
// trade endpoint; only sets that also implement RentEndpoints serve rent.
type EndpointSet interface {
	Trade() Endpoint
}

// RentEndpoints is implemented by endpoint sets that have a rent endpoint.
type RentEndpoints interface {
	EndpointSet
	Rent() Endpoint
}

type tradeOnly struct {
	trade Endpoint
}

func (s tradeOnly) Trade() Endpoint { return s.trade }

type tradeAndRent struct {
	trade Endpoint
	rent  Endpoint
}

func (s tradeAndRent) Trade() Endpoint { return s.trade }
func (s tradeAndRent) Rent() Endpoint  { return s.rent }

const (
	DefaultDataGoKrBaseURL = "https://apis.data.go.kr"
	DefaultOdcloudBaseURL  = "https://api.odcloud.kr/api"

	molitPrefix = "/1613000/RTMSDataSvc"

	subscriptionInfoPath = "/ApplyhomeInfoDetailSvc/v1/getAPTLttotPblancDetail"
	subscriptionStatPath = "/ApplyhomeStatSvc/v1"
	onbidBidResultPath   = "/B010003/OnbidCltrBidRsltListSrvc/getCltrBidRsltList"
)

// Registry is the static, read-only endpoint table. It is safe for
// concurrent use.
type Registry struct {
	dataGoKrBase string
	odcloudBase  string
	sets         map[models.HousingType]EndpointSet
}

// New builds the registry against the given base URLs. Empty values fall
// back to the production hosts.
func New(dataGoKrBase, odcloudBase string) *Registry {
	if dataGoKrBase == "" {
		dataGoKrBase = DefaultDataGoKrBaseURL
	}
	if odcloudBase == "" {
		odcloudBase = DefaultOdcloudBaseURL
	}
	r := &Registry{
		dataGoKrBase: strings.TrimRight(dataGoKrBase, "/"),
		odcloudBase:  strings.TrimRight(odcloudBase, "/"),
		sets:         make(map[models.HousingType]EndpointSet, len(models.HousingTypes)),
	}
	for _, h := range models.HousingTypes {
		r.sets[h] = r.buildSet(h)
	}
	return r
}

func (r *Registry) molit(service string) string {
	return r.dataGoKrBase + molitPrefix + service + "/getRTMSDataSvc" + service
}

func (r *Registry) buildSet(h models.HousingType) EndpointSet {
	switch h {
	case models.Apartment:
		return tradeAndRent{
			trade: Endpoint{URL: r.molit("AptTrade"), Parse: parsers.ParseAptTrade},
			rent:  Endpoint{URL: r.molit("AptRent"), Parse: parsers.ParseAptRent},
		}
	case models.Officetel:
		return tradeAndRent{
			trade: Endpoint{URL: r.molit("OffiTrade"), Parse: parsers.ParseOffiTrade},
			rent:  Endpoint{URL: r.molit("OffiRent"), Parse: parsers.ParseOffiRent},
		}
	case models.Villa:
		return tradeAndRent{
			trade: Endpoint{URL: r.molit("RHTrade"), Parse: parsers.ParseVillaTrade},
			rent:  Endpoint{URL: r.molit("RHRent"), Parse: parsers.ParseVillaRent},
		}
	case models.SingleHouse:
		return tradeAndRent{
			trade: Endpoint{URL: r.molit("SHTrade"), Parse: parsers.ParseSingleTrade},
			rent:  Endpoint{URL: r.molit("SHRent"), Parse: parsers.ParseSingleRent},
		}
	case models.Commercial:
		return tradeOnly{
			trade: Endpoint{URL: r.molit("NrgTrade"), Parse: parsers.ParseCommercialTrade},
		}
	}
	return nil
}

// Set returns the endpoint family for h.
func (r *Registry) Set(h models.HousingType) (EndpointSet, error) {
	set, ok := r.sets[h]
	if !ok {
		return nil, models.NewValidationError("Unsupported housing type: %d", int(h))
	}
	return set, nil
}

// Lookup returns the endpoint for a housing/transaction pair. Rent on a
// housing type without a rent endpoint is a validation_error.
func (r *Registry) Lookup(h models.HousingType, tx models.TransactionType) (Endpoint, error) {
	set, err := r.Set(h)
	if err != nil {
		return Endpoint{}, err
	}
	switch tx {
	case models.Trade:
		return set.Trade(), nil
	case models.Rent:
		rent, ok := set.(RentEndpoints)
		if !ok {
			return Endpoint{}, models.NewValidationError("%s does not support rent transactions", h.Label())
		}
		return rent.Rent(), nil
	}
	return Endpoint{}, models.NewValidationError("Unsupported transaction type: %s", tx)
}

// SupportsRent reports whether h has a rent endpoint. The CLI and HTTP layer
// use it to hide the rent option.
func (r *Registry) SupportsRent(h models.HousingType) bool {
	_, ok := r.sets[h].(RentEndpoints)
	return ok
}

// SubscriptionInfoURL is the APT subscription notice list.
func (r *Registry) SubscriptionInfoURL() string {
	return r.odcloudBase + subscriptionInfoPath
}

// StatKind names one subscription statistic.
type StatKind struct {
	Key      string
	Label    string
	endpoint string
}

// StatKinds lists the supported subscription statistics.
var StatKinds = []StatKind{
	{Key: "cmpetrt_area", Label: "지역별 청약 경쟁률", endpoint: "getAPTCmpetrtAreaStat"},
	{Key: "reqst_area", Label: "지역별 청약 신청자", endpoint: "getAPTReqstAreaStat"},
	{Key: "przwner_area", Label: "지역별 당첨자", endpoint: "getAPTPrzwnerAreaStat"},
	{Key: "aps_przwner", Label: "가점제 당첨자", endpoint: "getAPTApsPrzwnerStat"},
}

// StatURL returns the endpoint URL for a statistic kind key.
func (r *Registry) StatURL(kind string) (string, error) {
	for _, k := range StatKinds {
		if k.Key == kind {
			return r.odcloudBase + subscriptionStatPath + "/" + k.endpoint, nil
		}
	}
	return "", models.NewValidationError("Invalid stat_kind: %s", kind)
}

// OnbidURL is the public-auction bid result list.
func (r *Registry) OnbidURL() string {
	return r.dataGoKrBase + onbidBidResultPath
}
