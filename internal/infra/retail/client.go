// Package retail は外部ランキング検索サービス（Retail API の servingConfigs.search）のRESTクライアント。
package retail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

type SearchRequest struct {
	Query     string `json:"query"`
	VisitorID string `json:"visitorId"`
	PageSize  int    `json:"pageSize,omitempty"`
}

type SearchResult struct {
	ID string `json:"id"`
}

type SearchResponse struct {
	Results          []SearchResult `json:"results"`
	AttributionToken string         `json:"attributionToken"`
	TotalSize        int            `json:"totalSize"`
}

// IDs は返ってきた順（関連度順）のID
func (r SearchResponse) IDs() []string {
	ids := make([]string, 0, len(r.Results))
	for _, it := range r.Results {
		ids = append(ids, it.ID)
	}
	return ids
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	placement  string
}

// New はHTTPクライアントを差し込んで作る（テストでは httptest のクライアント）
func New(httpClient *http.Client, endpoint, placement string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
		placement:  strings.Trim(placement, "/"),
	}
}

// NewDefault はGoogleの認証付きHTTPクライアントで作る。
// credentialsFile が空ならApplication Default Credentialsを使う。
func NewDefault(ctx context.Context, endpoint, placement, credentialsFile string) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(cloudPlatformScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	hc, _, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("retail http client: %w", err)
	}
	return New(hc, endpoint, placement), nil
}

// Search は POST {endpoint}/{placement}:search を呼ぶ。
// リトライもタイムアウトも付けない（ctx と transport の既定に任せる）。
func (c *Client) Search(ctx context.Context, in SearchRequest) (SearchResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:search", c.endpoint, c.placement)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SearchResponse{}, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	// 2xx以外は *googleapi.Error
	if err := googleapi.CheckResponse(resp); err != nil {
		return SearchResponse{}, err
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}
	return out, nil
}
