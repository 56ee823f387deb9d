// Package phishing flags typo-squatted lookalikes of known official sites.
package phishing

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarityThreshold is the edit-distance ratio above which a non-exact
// match counts as a lookalike (e.g. "mahadbt.org.in" vs "mahadbt.gov.in",
// which scores just under 0.79).
const similarityThreshold = 0.75

// officialSites are the portals users are most likely to be lured away from.
var officialSites = []string{
	"mahadbt.gov.in",
	"uidai.gov.in",
	"sbi.co.in",
	"onlinesbi.sbi",
	"incometax.gov.in",
	"cybercrime.gov.in",
	"facebook.com",
	"google.com",
}

// Verdict is the outcome of one URL check.
type Verdict struct {
	IsPhishing bool    `json:"is_phishing"`
	Status     string  `json:"status"`
	Target     string  `json:"target,omitempty"`
	Similarity float64 `json:"similarity,omitempty"`
}

// Guard checks URLs against the official-site list.
type Guard struct {
	sites []string
}

// NewGuard creates a guard over the built-in official-site list.
func NewGuard() *Guard {
	return &Guard{sites: officialSites}
}

// CheckURL reports whether a URL is a typo-squatted version of a known
// official site. Exact matches are OFFICIAL; near matches are flagged.
func (g *Guard) CheckURL(url string) Verdict {
	host := cleanHost(url)

	for _, site := range g.sites {
		if host == site {
			return Verdict{IsPhishing: false, Status: "OFFICIAL"}
		}
	}

	for _, site := range g.sites {
		ratio := similarity(host, site)
		if ratio > similarityThreshold && ratio < 1.0 {
			return Verdict{
				IsPhishing: true,
				Status:     "PHISHING_DETECTED",
				Target:     site,
				Similarity: ratio,
			}
		}
	}

	return Verdict{IsPhishing: false, Status: "SAFE_OR_UNKNOWN"}
}

// cleanHost strips scheme, www prefix, and path from a URL.
func cleanHost(url string) string {
	host := strings.TrimPrefix(url, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}

// similarity maps edit distance onto a [0,1] ratio, 1 being identical.
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
