package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bartracker/bar-price-tracker/internal/models"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	priceClassRe  = regexp.MustCompile(`(?i)price|amount`)
	dollarRe      = regexp.MustCompile(`\$\d+`)
	numberRe      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	volumeMLRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ml`)
	volumeLitreRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*l(?:itre)?`)
	percentRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	productImgRe  = regexp.MustCompile(`(?i)product|item`)
)

// DefaultRules are the page heuristics shared by every supported retailer.
type DefaultRules struct{}

func (DefaultRules) SelectName(doc *goquery.Document) string {
	if h := doc.Find("h1").First(); h.Length() > 0 {
		return h.Text()
	}

	return doc.Find("h2").First().Text()
}

func (DefaultRules) SelectPriceCandidate(doc *goquery.Document) string {
	el := doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return priceClassRe.MatchString(class)
	}).First()
	if el.Length() > 0 {
		return el.Text()
	}

	return firstTextMatching(doc.Selection, dollarRe)
}

func (DefaultRules) SelectImage(doc *goquery.Document) (string, bool) {
	img := doc.Find("img[src]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		return productImgRe.MatchString(src)
	}).First()
	if img.Length() == 0 {
		return "", false
	}

	return img.Attr("src")
}

// Extract parses a product page. Missing fields are left nil; only an unreadable body is an error.
func Extract(profile Profile, body io.Reader) (*models.ScrapedProduct, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page: %w", err)
	}

	rules := profile.Rules
	if rules == nil {
		rules = DefaultRules{}
	}

	name := CleanText(rules.SelectName(doc))
	combined := name + " " + doc.Text()

	product := &models.ScrapedProduct{
		Name:              name,
		Brand:             brandFromName(name),
		Price:             ParsePrice(CleanText(rules.SelectPriceCandidate(doc))),
		Size:              ParseVolume(combined),
		AlcoholPercentage: ParseAlcoholPercentage(combined),
		Retailer:          string(profile.Retailer),
	}

	if src, ok := rules.SelectImage(doc); ok {
		product.ImageURL = &src
	}

	return product, nil
}

func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func brandFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// ParsePrice takes the first number after dropping thousands separators, so
// "$24.99 (was $29.99)" yields 24.99.
func ParsePrice(text string) *float64 {
	m := numberRe.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return nil
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}

	return &v
}

// ParseVolume returns the size in millilitres. An ml match anywhere in the text beats a litre match.
func ParseVolume(text string) *int {
	lower := strings.ToLower(text)

	if m := volumeMLRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			ml := int(v)
			return &ml
		}
	}

	if m := volumeLitreRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			ml := int(v * 1000)
			return &ml
		}
	}

	return nil
}

func ParseAlcoholPercentage(text string) *float64 {
	m := percentRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	return &v
}

// firstTextMatching walks text nodes in document order.
func firstTextMatching(sel *goquery.Selection, re *regexp.Regexp) string {
	var found string

	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && re.MatchString(n.Data) {
			found = n.Data
			return true
		}

		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return false
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}

		return false
	}

	for _, n := range sel.Nodes {
		if walk(n) {
			break
		}
	}

	return found
}
