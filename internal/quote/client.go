package quote

import (
	"context"
	"errors"
	"strings"

	"github.com/i474232898/weather-dashboard/internal/upstream"
)

var errEmptyQuote = errors.New("quote text is empty")

// Client fetches a single random quote from the quote endpoint.
type Client struct {
	endpoint string
	client   *upstream.Client
}

func NewClient(endpoint string, client *upstream.Client) *Client {
	return &Client{
		endpoint: endpoint,
		client:   client,
	}
}

// Fetch makes one request. The body is {quote, author, tags}; Quotable's
// {content, author, tags} is accepted as well.
func (c *Client) Fetch(ctx context.Context) (Record, error) {
	var payload struct {
		Quote   string   `json:"quote"`
		Content string   `json:"content"`
		Author  string   `json:"author"`
		Tags    []string `json:"tags"`
	}

	if err := c.client.GetJSON(ctx, c.endpoint, &payload); err != nil {
		return Record{}, err
	}

	text := payload.Quote
	if text == "" {
		text = payload.Content
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Record{}, upstream.Malformed(c.client.Service(), errEmptyQuote)
	}

	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}

	return Record{
		Text:   text,
		Author: strings.TrimSpace(payload.Author),
		Tags:   tags,
	}, nil
}
