package auth

import (
	"strings"

	"korea-realestate/models"
)

// Credential is how a key reaches an upstream: either as the serviceKey
// query parameter or as the Authorization header. Only the two variants
// in this package implement it.
type Credential interface {
	// Mode is "serviceKey" or "authorization".
	Mode() string
	credential()
}

// ServiceKey is injected as the serviceKey query parameter.
type ServiceKey struct {
	Key string
}

func (ServiceKey) Mode() string { return "serviceKey" }
func (ServiceKey) credential()  {}

// AuthorizationHeader is sent verbatim as the Authorization header.
type AuthorizationHeader struct {
	Value string
}

func (AuthorizationHeader) Mode() string { return "authorization" }
func (AuthorizationHeader) credential()  {}

// Provider identifies an upstream family with its own credential check.
type Provider int

const (
	// DataGoKr is the general open-data key used by the transaction endpoints.
	DataGoKr Provider = iota + 1
	// Onbid uses its own key when set, otherwise the general key.
	Onbid
	// Odcloud serves the subscription endpoints.
	Odcloud
)

func (p Provider) String() string {
	switch p {
	case DataGoKr:
		return "data.go.kr"
	case Onbid:
		return "onbid"
	case Odcloud:
		return "odcloud"
	}
	return "unknown"
}

// Credentials is the key material handed to the resolver at construction.
type Credentials struct {
	DataGoKrKey       string
	OnbidKey          string
	OdcloudAPIKey     string
	OdcloudServiceKey string
}

const odcloudHeaderScheme = "Infuser "

// Resolver maps a provider to the credential the fetcher must inject.
// It never reads the environment.
type Resolver struct {
	creds Credentials
}

func NewResolver(creds Credentials) *Resolver {
	return &Resolver{creds: creds}
}

// Resolve returns the active credential for p, or a missing_key error
// naming the setting that has to be provided.
func (r *Resolver) Resolve(p Provider) (Credential, error) {
	switch p {
	case DataGoKr:
		key := strings.TrimSpace(r.creds.DataGoKrKey)
		if key == "" {
			return nil, models.NewMissingKeyError("DATA_GO_KR_API_KEY is not set")
		}
		return ServiceKey{Key: key}, nil

	case Onbid:
		key := strings.TrimSpace(r.creds.OnbidKey)
		if key == "" {
			key = strings.TrimSpace(r.creds.DataGoKrKey)
		}
		if key == "" {
			return nil, models.NewMissingKeyError("ONBID_API_KEY or DATA_GO_KR_API_KEY is not set")
		}
		return ServiceKey{Key: key}, nil

	case Odcloud:
		// The header form wins when both are configured.
		if key := strings.TrimSpace(r.creds.OdcloudAPIKey); key != "" {
			if !strings.HasPrefix(key, odcloudHeaderScheme) {
				key = odcloudHeaderScheme + key
			}
			return AuthorizationHeader{Value: key}, nil
		}
		if key := strings.TrimSpace(r.creds.OdcloudServiceKey); key != "" {
			return ServiceKey{Key: key}, nil
		}
		return nil, models.NewMissingKeyError("ODCLOUD_API_KEY or ODCLOUD_SERVICE_KEY is not set")
	}
	return nil, models.NewValidationError("unknown credential provider: %d", int(p))
}
