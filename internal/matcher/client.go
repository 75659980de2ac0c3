// Package matcher is the HTTP client for the job-matching service. The
// service scores an extracted CV against its job corpus and returns the top
// matches with percentage scores.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-parser/internal/types"
)

// DefaultTopK is the number of matches requested when the caller passes 0.
const DefaultTopK = 10

var validate = validator.New()

// Client talks to one matcher service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a matcher client for the given base URL, e.g.
// "http://localhost:8000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// predictRequest is the wire request of POST /api/predict-jobs.
type predictRequest struct {
	CVData *types.ExtractedDocument `json:"cvData" validate:"required"`
	TopK   int                      `json:"topK" validate:"gte=1,lte=100"`
}

// JobMatch is one scored job from the matcher service. Field casing follows
// the service's response verbatim.
type JobMatch struct {
	JobTitle        string  `json:"Job_Title"`
	Company         string  `json:"Company"`
	CompanyLogo     string  `json:"Company_Logo"`
	Location        string  `json:"Location"`
	WorkType        string  `json:"Work_Type"`
	ExperienceLevel string  `json:"Experience_Level"`
	LinkedInURL     string  `json:"LinkedIn_URL"`
	MatchScore      float64 `json:"matchScore"`
	Domain          string  `json:"domain,omitempty"`
}

// PredictResponse is the full response of POST /api/predict-jobs.
type PredictResponse struct {
	Success   bool       `json:"success"`
	Matches   []JobMatch `json:"matches"`
	TotalJobs int        `json:"totalJobs"`
	Algorithm string     `json:"algorithm"`
	ModelUsed string     `json:"model_used,omitempty"`
}

// Match sends the extracted document to the matcher service and returns the
// scored response. topK of 0 means DefaultTopK.
func (c *Client) Match(ctx context.Context, doc *types.ExtractedDocument, topK int) (*PredictResponse, error) {
	if topK == 0 {
		topK = DefaultTopK
	}

	req := predictRequest{CVData: doc, TopK: topK}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid match request: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict-jobs", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build match request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("matcher service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("matcher service returned %d: %s", resp.StatusCode, string(payload))
	}

	var result PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode matcher response: %w", err)
	}
	if result.Matches == nil {
		result.Matches = []JobMatch{}
	}
	return &result, nil
}

// Health checks the matcher service's root health endpoint.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("matcher service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("matcher service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
