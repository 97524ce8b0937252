package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
	"github.com/eventbyen/eventsync-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// candidateQuery selects events still holding an external image URL,
// projected to the fields the migration needs.
const candidateQuery = `*[_type == "event" && defined(imageUrl)] { _id, title, imageUrl }`

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 8 << 10

// Config identifies the target Sanity project and dataset.
type Config struct {
	// ProjectID is the Sanity project identifier.
	ProjectID string

	// Dataset is the dataset within the project.
	Dataset string

	// APIVersion is the dated API version string, e.g. "2024-01-01".
	APIVersion string

	// BaseURL overrides the derived API base URL. Used in tests.
	BaseURL string
}

// baseURL returns the API root for the configured project.
func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.api.sanity.io/v%s", c.ProjectID, c.APIVersion)
}

// Ensure Client implements the interface.
var _ driven.ContentStore = (*Client)(nil)

// Client talks to the Sanity HTTP API with a static bearer token.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient creates a Sanity client authenticated with the given token.
func NewClient(ctx context.Context, cfg Config, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		httpClient: tc,
		cfg:        cfg,
	}
}

// wireMutation is the JSON shape of one mutation on the wire.
type wireMutation struct {
	CreateOrReplace *domain.EventDocument `json:"createOrReplace,omitempty"`
	Patch           *wirePatch            `json:"patch,omitempty"`
}

type wirePatch struct {
	ID    string         `json:"id"`
	Set   map[string]any `json:"set,omitempty"`
	Unset []string       `json:"unset,omitempty"`
}

type mutateRequest struct {
	Mutations []wireMutation `json:"mutations"`
}

type mutateResponse struct {
	Results []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Mutate sends the mutations to the mutate endpoint as one wire call and
// counts the per-operation outcomes of a successful response.
func (c *Client) Mutate(ctx context.Context, mutations []domain.Mutation) (*domain.MutateResult, error) {
	wire := make([]wireMutation, 0, len(mutations))
	for _, m := range mutations {
		wm := wireMutation{CreateOrReplace: m.CreateOrReplace}
		if m.Patch != nil {
			wm.Patch = &wirePatch{
				ID:    m.Patch.ID,
				Set:   m.Patch.Set,
				Unset: m.Patch.Unset,
			}
		}
		wire = append(wire, wm)
	}

	payload, err := json.Marshal(mutateRequest{Mutations: wire})
	if err != nil {
		return nil, fmt.Errorf("encode mutations: %w", err)
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s", c.cfg.baseURL(), c.cfg.Dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp mutateResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	result := &domain.MutateResult{}
	for _, r := range resp.Results {
		switch r.Operation {
		case "create":
			result.Created++
		case "update":
			result.Updated++
		}
	}
	return result, nil
}

type queryResponse struct {
	Result []domain.ImageCandidate `json:"result"`
}

// QueryCandidates runs the candidate query against the query endpoint.
func (c *Client) QueryCandidates(ctx context.Context) ([]domain.ImageCandidate, error) {
	endpoint := fmt.Sprintf("%s/data/query/%s?query=%s",
		c.cfg.baseURL(), c.cfg.Dataset, url.QueryEscape(candidateQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var resp queryResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

type assetResponse struct {
	Document struct {
		ID string `json:"_id"`
	} `json:"document"`
}

// UploadAsset posts raw image bytes to the asset endpoint and returns the
// new asset document's identifier.
func (c *Client) UploadAsset(ctx context.Context, data []byte, mimeType, filename string) (string, error) {
	endpoint := fmt.Sprintf("%s/assets/images/%s?filename=%s",
		c.cfg.baseURL(), c.cfg.Dataset, url.QueryEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)

	var resp assetResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Document.ID, nil
}

// do executes the request, converts non-success responses into APIError
// and decodes the success body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			URL:        req.URL.String(),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
