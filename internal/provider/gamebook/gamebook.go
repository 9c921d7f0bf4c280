// Package gamebook implements the gamebook-listing/download contract:
// listing PDF URLs for a date and downloading them with a URL-keyed cache
// so a retried fetch does not re-download an already-cached PDF. Referee
// crew/alternate extraction from PDF text is a regex-over-text contract;
// PDF-to-text decoding itself is an external boundary, stubbed behind
// TextExtractor so a real PDF library can be plugged in.
package gamebook

import (
	"context"
	"crypto/md5"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/albapepper/scoracle-ingest/internal/httpfetch"
	"github.com/albapepper/scoracle-ingest/internal/model"
)

// downloadTTL governs how long a downloaded PDF body stays cached.
const downloadTTL = 24 * time.Hour

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// DownloadCache is a thread-safe, URL-keyed, TTL cache of gamebook PDF
// bytes — adapted from the scoracle API-response cache, re-keyed on
// download URL instead of request body hash.
type DownloadCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewDownloadCache builds an empty cache.
func NewDownloadCache() *DownloadCache {
	return &DownloadCache{entries: make(map[string]cacheEntry)}
}

func (c *DownloadCache) get(url string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[url]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

func (c *DownloadCache) set(url string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{data: data, expiresAt: time.Now().Add(downloadTTL)}
}

// ETag returns a weak content hash, useful for dedupe/logging.
func ETag(data []byte) string {
	sum := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, sum[:8])
}

// GamebookRef is one listed gamebook PDF for a date.
type GamebookRef struct {
	GameID string
	URL    string
}

// Client lists and downloads gamebook PDFs.
type Client struct {
	fetcher *httpfetch.Fetcher
	cache   *DownloadCache
}

// NewClient builds a gamebook Client.
func NewClient(fetcher *httpfetch.Fetcher, cache *DownloadCache) *Client {
	if cache == nil {
		cache = NewDownloadCache()
	}
	return &Client{fetcher: fetcher, cache: cache}
}

// ListGamebooks fetches the listing page at listingURL and extracts
// gamebook PDF URLs. The listing page's HTML structure is an external boundary;
// this implementation extracts href values ending in .pdf.
func (c *Client) ListGamebooks(ctx context.Context, listingURL string) ([]GamebookRef, error) {
	body, _, err := c.fetcher.Get(ctx, listingURL, nil)
	if err != nil {
		return nil, err
	}
	return parsePdfHrefs(string(body)), nil
}

var hrefPdfRe = regexp.MustCompile(`href="([^"]+\.pdf)"`)

func parsePdfHrefs(html string) []GamebookRef {
	matches := hrefPdfRe.FindAllStringSubmatch(html, -1)
	refs := make([]GamebookRef, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, GamebookRef{URL: m[1]})
	}
	return refs
}

// DownloadGamebook downloads ref.URL verbatim, serving from cache when
// present.
func (c *Client) DownloadGamebook(ctx context.Context, ref GamebookRef) ([]byte, error) {
	if data, ok := c.cache.get(ref.URL); ok {
		return data, nil
	}
	body, _, err := c.fetcher.Get(ctx, ref.URL, nil)
	if err != nil {
		return nil, err
	}
	c.cache.set(ref.URL, body)
	return body, nil
}

// TextExtractor converts gamebook PDF bytes to plain text. The production
// implementation would wrap a real PDF-text library; it is an external
// boundary here.
type TextExtractor interface {
	ExtractText(pdf []byte) (string, error)
}

var (
	crewChiefRe = regexp.MustCompile(`(?i)crew\s*chief:\s*([A-Za-z.'\- ]+)`)
	refereeRe   = regexp.MustCompile(`(?i)referee:\s*([A-Za-z.'\- ]+)`)
	umpireRe    = regexp.MustCompile(`(?i)umpire:\s*([A-Za-z.'\- ]+)`)
	alternateRe = regexp.MustCompile(`(?i)alternate:\s*([A-Za-z.'\- ]+)`)
)

// ExtractReferees scans gamebook text for crew chief/referee/umpire
// assignments and alternates, by regex against visible text.
func ExtractReferees(gameID, text string) ([]model.RefAssignment, []model.RefAlternate) {
	var assignments []model.RefAssignment
	var alternates []model.RefAlternate

	appendAssignment := func(re *regexp.Regexp, role model.RefRole) {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if name == "" {
				continue
			}
			assignments = append(assignments, model.RefAssignment{
				GameID:          gameID,
				RefereeName:     name,
				RefereeNameSlug: slugify(name),
				Role:            role,
			})
		}
	}
	appendAssignment(crewChiefRe, model.RoleCrewChief)
	appendAssignment(refereeRe, model.RoleReferee)
	appendAssignment(umpireRe, model.RoleUmpire)

	for _, m := range alternateRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		alternates = append(alternates, model.RefAlternate{
			GameID:          gameID,
			RefereeName:     name,
			RefereeNameSlug: slugify(name),
		})
	}
	return assignments, alternates
}

func slugify(name string) string {
	lower := strings.ToLower(name)
	fields := strings.Fields(lower)
	return strings.Join(fields, "-")
}
