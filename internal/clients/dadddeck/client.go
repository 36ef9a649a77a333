package dadddeck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
)

const defaultBaseURL = "https://api.dadddeck.com/v1"

// listPageSize is the page size used when walking the whole catalog
const listPageSize = 100

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Config holds configuration for the catalog client
type Config struct {
	HttpClient *http.Client
	BaseURL    string // Optional - defaults to production
	APIKey     string
}

// New creates a new DadDeck catalog client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dderr.InvalidArgument("cfg is required")
	}
	if cfg.APIKey == "" {
		return nil, dderr.InvalidArgument("API key is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
	}, nil
}

// cardPayload is the wire form of a catalog definition
type cardPayload struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Rarity     string         `json:"rarity"`
	Series     int            `json:"series"`
	Stats      entities.Stats `json:"stats"`
	FlavorText string         `json:"flavorText,omitempty"`
}

type paginationPayload struct {
	Page       int  `json:"page"`
	TotalCards int  `json:"totalCards"`
	HasNext    bool `json:"hasNext"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the standard DadDeck API response wrapper
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorPayload   `json:"error"`
}

func (c *client) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	if input == nil {
		input = &ListCardsInput{}
	}

	params := url.Values{}
	if input.Page > 0 {
		params.Set("page", strconv.Itoa(input.Page))
	}
	if input.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(input.PageSize))
	}
	if input.Rarity != "" {
		params.Set("rarity", string(input.Rarity))
	}
	if input.Type != "" {
		params.Set("type", string(input.Type))
	}
	if input.Search != "" {
		params.Set("search", input.Search)
	}

	var payload struct {
		Cards      []cardPayload     `json:"cards"`
		Pagination paginationPayload `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/cards", params, nil, &payload); err != nil {
		return nil, err
	}

	return &ListCardsOutput{
		Cards:      payloadsToDefinitions(payload.Cards),
		TotalCards: payload.Pagination.TotalCards,
		HasNext:    payload.Pagination.HasNext,
	}, nil
}

func (c *client) ListAllCards(ctx context.Context, input *ListCardsInput) ([]*entities.CardDefinition, error) {
	if input == nil {
		input = &ListCardsInput{}
	}

	var all []*entities.CardDefinition
	page := 1
	for {
		pageInput := *input
		pageInput.Page = page
		pageInput.PageSize = listPageSize

		out, err := c.ListCards(ctx, &pageInput)
		if err != nil {
			return nil, dderr.Wrapf(err, "failed to list catalog page %d", page)
		}

		all = append(all, out.Cards...)
		if !out.HasNext {
			return all, nil
		}
		page++
	}
}

func (c *client) GetCard(ctx context.Context, cardID string) (*entities.CardDefinition, error) {
	if cardID == "" {
		return nil, dderr.InvalidArgument("card ID is required")
	}

	var payload cardPayload
	if err := c.do(ctx, http.MethodGet, "/cards/"+url.PathEscape(cardID), nil, nil, &payload); err != nil {
		return nil, err
	}

	return payloadToDefinition(payload), nil
}

func (c *client) RandomCards(ctx context.Context, input *RandomCardsInput) ([]*entities.CardDefinition, error) {
	if input == nil || input.Count < 1 {
		return nil, dderr.InvalidArgument("count must be at least 1")
	}

	params := url.Values{}
	params.Set("count", strconv.Itoa(input.Count))
	if input.Rarity != "" {
		params.Set("rarity", string(input.Rarity))
	}
	if input.Type != "" {
		params.Set("type", string(input.Type))
	}

	var body any
	if len(input.Exclude) > 0 {
		body = map[string][]string{"exclude": input.Exclude}
	}

	var payload struct {
		Cards []cardPayload `json:"cards"`
	}
	if err := c.do(ctx, http.MethodPost, "/cards/random", params, body, &payload); err != nil {
		return nil, err
	}

	return payloadsToDefinitions(payload.Cards), nil
}

// do issues one authenticated request and decodes the envelope into out
func (c *client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return dderr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return dderr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dderr.Wrapf(err, "request to %s failed", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		return dderr.WrapWithCode(decodeErr, dderr.CodeInternal,
			fmt.Sprintf("failed to decode response from %s (status %d)", path, resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Error != nil {
		code := dderr.CodeInternal
		message := fmt.Sprintf("catalog API error (status %d)", resp.StatusCode)
		if env.Error != nil {
			message = env.Error.Message
			switch {
			case env.Error.Code == "NOT_FOUND" || resp.StatusCode == http.StatusNotFound:
				code = dderr.CodeNotFound
			case env.Error.Code == "RATE_LIMIT_EXCEEDED" || resp.StatusCode == http.StatusTooManyRequests:
				code = dderr.CodeRateLimited
			}
		} else if resp.StatusCode == http.StatusNotFound {
			code = dderr.CodeNotFound
		} else if resp.StatusCode == http.StatusTooManyRequests {
			code = dderr.CodeRateLimited
		}

		apiErr := dderr.New(code, message).WithMeta("status", resp.StatusCode)
		if code == dderr.CodeRateLimited {
			apiErr = apiErr.WithMeta("retry_after_seconds", retryAfterSeconds(resp.Header))
			if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
				apiErr = apiErr.WithMeta("rate_limit_remaining", remaining)
			}
			if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
				apiErr = apiErr.WithMeta("rate_limit_reset", reset)
			}
		}
		return apiErr
	}

	if out != nil {
		if decodeErr := json.Unmarshal(env.Data, out); decodeErr != nil {
			return dderr.WrapWithCode(decodeErr, dderr.CodeInternal,
				fmt.Sprintf("failed to decode data from %s", path))
		}
	}

	return nil
}

// defaultRetryAfterSeconds matches the API SDK's fallback delay when the
// server omits Retry-After
const defaultRetryAfterSeconds = 60

func retryAfterSeconds(headers http.Header) int {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			return seconds
		}
	}
	return defaultRetryAfterSeconds
}

func payloadToDefinition(p cardPayload) *entities.CardDefinition {
	return &entities.CardDefinition{
		ID:         p.ID,
		Name:       p.Name,
		Archetype:  entities.Archetype(p.Type),
		Rarity:     entities.Rarity(p.Rarity),
		Series:     p.Series,
		BaseStats:  p.Stats.Clamped(),
		FlavorText: p.FlavorText,
	}
}

func payloadsToDefinitions(payloads []cardPayload) []*entities.CardDefinition {
	defs := make([]*entities.CardDefinition, len(payloads))
	for i, p := range payloads {
		defs[i] = payloadToDefinition(p)
	}
	return defs
}
