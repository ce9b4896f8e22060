package scraper

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrUnsupportedSource = errors.New("unsupported retailer")

type Retailer string

const (
	RetailerBWS        Retailer = "bws"
	RetailerLiquorland Retailer = "liquorland"
)

// FieldRules locates the raw pieces of a product page. Retailer specific rules can embed
// DefaultRules and override a single method.
type FieldRules interface {
	SelectName(doc *goquery.Document) string
	SelectPriceCandidate(doc *goquery.Document) string
	SelectImage(doc *goquery.Document) (string, bool)
}

type Profile struct {
	Retailer Retailer
	Domains  []string
	Rules    FieldRules
}

var profiles = []Profile{
	{Retailer: RetailerBWS, Domains: []string{"bws.com.au"}, Rules: DefaultRules{}},
	{Retailer: RetailerLiquorland, Domains: []string{"liquorland.com.au"}, Rules: DefaultRules{}},
}

// ProfileForURL matches the URL host against the known retailer domains.
func ProfileForURL(rawURL string) (Profile, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return Profile{}, ErrUnsupportedSource
	}

	host := strings.ToLower(u.Hostname())

	for _, p := range profiles {
		for _, d := range p.Domains {
			if host == d || strings.HasSuffix(host, "."+d) {
				return p, nil
			}
		}
	}

	return Profile{}, ErrUnsupportedSource
}
