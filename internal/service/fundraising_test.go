package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fundraisingPage = `<html><body>
<h1>Fundraising Leaderboard</h1>
<p>Team WWPD has raised $1,250</p>
<div data-raised="1250.00">Total: $1,250.00</div>
<iframe src="https://grassrootz.com/cole-classic/team-wwpd"></iframe>
<span>$50</span><span>$95</span>
</body></html>`

func TestScrape_ExtractsPatterns(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0 (compatible; WWPD-Bot/1.0)", r.Header.Get("User-Agent"))
		w.Write([]byte(fundraisingPage))
	}))
	defer ts.Close()

	svc := NewFundraisingService(ts.URL, zerolog.Nop())

	snapshot, err := svc.Scrape(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(fundraisingPage), snapshot.PageLength)
	assert.Contains(t, snapshot.DollarAmounts, "$1,250")
	assert.Contains(t, snapshot.DollarAmounts, "$50")
	assert.NotEmpty(t, snapshot.GrassrootzURLs)
	assert.Contains(t, snapshot.GrassrootzURLs[0], "grassrootz.com")
	assert.Contains(t, snapshot.DataAttributes, `data-raised="1250.00"`)
	assert.NotEmpty(t, snapshot.TeamMentions)
	assert.True(t, snapshot.HasLeaderboard)
	assert.NotEmpty(t, snapshot.LeaderboardSnippet)
}

func TestScrape_CapsDollarAmounts(t *testing.T) {
	page := ""
	for i := 0; i < 15; i++ {
		page += "<span>$10</span>"
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer ts.Close()

	svc := NewFundraisingService(ts.URL, zerolog.Nop())

	snapshot, err := svc.Scrape(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.DollarAmounts, 10)
}

func TestScrape_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	svc := NewFundraisingService(ts.URL, zerolog.Nop())

	_, err := svc.Scrape(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
