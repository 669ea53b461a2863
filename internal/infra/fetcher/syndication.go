package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// syndicationResponse is the subset of the syndication payload we consume.
type syndicationResponse struct {
	Text string `json:"text"`
}

// fetchSyndication performs the secondary lookup against the syndication
// endpoint, keyed by the numeric tweet ID. Returns the raw text field.
func (f *TweetFetcher) fetchSyndication(ctx context.Context, tweetURL string) (string, error) {
	id, err := tweetID(tweetURL)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s?id=%d&token=%s",
		f.config.SyndicationURL, id, url.QueryEscape(syndicationToken(id)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("syndication: build request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("syndication: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("syndication: unexpected status %d", resp.StatusCode)
	}

	var payload syndicationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("syndication: decode response: %w", err)
	}

	return strings.TrimSpace(payload.Text), nil
}

// tweetID extracts the numeric status ID from a tweet URL, i.e. the path
// segment following "status". Query strings and trailing segments such as
// "/photo/1" are ignored.
func tweetID(tweetURL string) (uint64, error) {
	parsed, err := url.Parse(tweetURL)
	if err != nil {
		return 0, fmt.Errorf("syndication: parse url: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, segment := range segments {
		if segment != "status" && segment != "statuses" {
			continue
		}
		if i+1 >= len(segments) {
			break
		}
		id, err := strconv.ParseUint(segments[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("syndication: non-numeric status id %q", segments[i+1])
		}
		return id, nil
	}
	return 0, fmt.Errorf("syndication: no status id in url %q", tweetURL)
}

// syndicationToken derives the access token the syndication endpoint expects:
// (id / 1e15) * pi rendered in base 36 with the zeros and radix point removed.
func syndicationToken(id uint64) string {
	val := float64(id) / 1e15 * math.Pi

	intPart := int64(val)
	frac := val - float64(intPart)

	token := strconv.FormatInt(intPart, 36)
	// 10 fractional base-36 digits match the precision the endpoint accepts.
	for i := 0; i < 10; i++ {
		frac *= 36
		digit := int64(frac)
		token += strconv.FormatInt(digit, 36)
		frac -= float64(digit)
	}

	token = strings.ReplaceAll(token, "0", "")
	return token
}
