package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// oEmbedResponse is the subset of the oEmbed payload we consume. The html
// field carries a blockquote fragment whose first paragraph is the tweet text.
type oEmbedResponse struct {
	HTML       string `json:"html"`
	AuthorName string `json:"author_name"`
}

// fetchOEmbed performs the primary lookup. It returns the text of the first
// paragraph tag in the embedded HTML fragment, tags stripped and entities
// decoded, or an empty string when the fragment has no paragraph.
func (f *TweetFetcher) fetchOEmbed(ctx context.Context, tweetURL string) (string, error) {
	endpoint := fmt.Sprintf("%s?url=%s&omit_script=1",
		f.config.OEmbedURL, url.QueryEscape(tweetURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("oembed: build request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed: unexpected status %d", resp.StatusCode)
	}

	var payload oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("oembed: decode response: %w", err)
	}

	return extractParagraph(payload.HTML)
}

// extractParagraph returns the text content of the first <p> in the given
// HTML fragment. goquery strips nested tags and decodes HTML entities.
func extractParagraph(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("oembed: parse html fragment: %w", err)
	}
	return strings.TrimSpace(doc.Find("p").First().Text()), nil
}
