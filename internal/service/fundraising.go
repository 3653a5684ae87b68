package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jimothydawson/phoebe-fund/internal/model"
)

// The fundraising platform exposes no API, so totals are pulled out of the
// public page with pattern matching. Results are best-effort by nature.
var (
	dollarPattern      = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	grassrootzPattern  = regexp.MustCompile(`grassrootz\.com[^"']*`)
	dataAttrPattern    = regexp.MustCompile(`(?i)data-(?:amount|raised|total)="[\d,.]+"`)
	teamMentionPattern = regexp.MustCompile(`(?i)(?:team\s*wwpd|phoebe)[^<]*?\$[\d,]+`)
)

const (
	scrapeUserAgent   = "Mozilla/5.0 (compatible; WWPD-Bot/1.0)"
	maxDollarAmounts  = 10
	snippetLength     = 500
	leaderboardMarker = "leaderboard"
)

type FundraisingService interface {
	Scrape(ctx context.Context) (*model.FundraisingSnapshot, error)
}

type fundraisingServiceImpl struct {
	httpClient *http.Client
	pageURL    string
	logger     zerolog.Logger
}

func NewFundraisingService(pageURL string, logger zerolog.Logger) FundraisingService {
	return &fundraisingServiceImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pageURL: pageURL,
		logger:  logger,
	}
}

func (s *fundraisingServiceImpl) Scrape(ctx context.Context) (*model.FundraisingSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch fundraising page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch fundraising page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read fundraising page: %w", err)
	}
	page := string(body)

	snapshot := &model.FundraisingSnapshot{
		PageLength:     len(page),
		DollarAmounts:  dollarPattern.FindAllString(page, -1),
		GrassrootzURLs: grassrootzPattern.FindAllString(page, -1),
		DataAttributes: dataAttrPattern.FindAllString(page, -1),
		TeamMentions:   teamMentionPattern.FindAllString(page, -1),
	}
	if len(snapshot.DollarAmounts) > maxDollarAmounts {
		snapshot.DollarAmounts = snapshot.DollarAmounts[:maxDollarAmounts]
	}

	if idx := strings.Index(strings.ToLower(page), leaderboardMarker); idx >= 0 {
		snapshot.HasLeaderboard = true
		end := idx + snippetLength
		if end > len(page) {
			end = len(page)
		}
		snapshot.LeaderboardSnippet = page[idx:end]
	}

	s.logger.Debug().
		Int("page_length", snapshot.PageLength).
		Int("dollar_amounts", len(snapshot.DollarAmounts)).
		Msg("fundraising page scraped")

	return snapshot, nil
}
