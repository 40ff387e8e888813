// Package client is a Go client for the shop platform HTTP API. It covers
// authentication, shop and job management, costing and the upload
// authorization flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the API client
type Config struct {
	// BaseURL is the base URL of the platform API
	BaseURL string
	// Token is the bearer token attached to authenticated requests
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the platform API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new API client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken replaces the bearer token used for authenticated requests.
// Login calls it automatically on success.
func (c *Client) SetToken(token string) {
	c.config.Token = token
}

// User is a platform account as returned by the API.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Admin     bool   `json:"admin"`
	Suspended bool   `json:"suspended"`
}

// Shop is a tenant. Balance is present only for privileged viewers, in
// minor currency units.
type Shop struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Balance     *int64 `json:"balance,omitempty"`
	Active      bool   `json:"active"`
}

// Job is a unit of submitted work.
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Finalized   bool       `json:"finalized"`
	FinalizedAt *time.Time `json:"finalized_at"`
	UserID      string     `json:"user_id"`
	ShopID      string     `json:"shop_id"`
	GroupID     *string    `json:"group_id"`
	Items       []JobItem  `json:"items,omitempty"`
}

// JobItem is one deliverable within a job.
type JobItem struct {
	ID       string `json:"id"`
	JobID    string `json:"job_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Approved *bool  `json:"approved"`
	Active   bool   `json:"active"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

// JobAggregate is the server-computed cost and status rollup of a job.
type JobAggregate struct {
	TotalCost            int64 `json:"total_cost"`
	ItemsCount           int   `json:"items_count"`
	CompletedCount       int   `json:"completed_count"`
	InProgressCount      int   `json:"in_progress_count"`
	NotStartedCount      int   `json:"not_started_count"`
	ExcludedCount        int   `json:"excluded_count"`
	ApprovedCount        int   `json:"approved_count"`
	RejectedCount        int   `json:"rejected_count"`
	PendingApprovalCount int   `json:"pending_approval_count"`
}

// LedgerEntry records one balance movement on a shop.
type LedgerEntry struct {
	ID         string    `json:"id"`
	ShopID     string    `json:"shop_id"`
	UserID     string    `json:"user_id"`
	JobID      *string   `json:"job_id"`
	Type       string    `json:"type"`
	Amount     int64     `json:"amount"`
	InvoiceURL string    `json:"invoice_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Ok    bool   `json:"ok"`
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.config.BaseURL)
	var resp loginResponse
	if err := c.post(ctx, endpoint, LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)
	return resp.User, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	endpoint := fmt.Sprintf("%s/api/me", c.config.BaseURL)
	var resp struct {
		Ok   bool  `json:"ok"`
		User *User `json:"user"`
	}
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// ListShops lists the shops visible to the authenticated user.
func (c *Client) ListShops(ctx context.Context) ([]Shop, error) {
	endpoint := fmt.Sprintf("%s/api/shops", c.config.BaseURL)
	var resp struct {
		Ok    bool   `json:"ok"`
		Shops []Shop `json:"shops"`
	}
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Shops, nil
}

// GetShop retrieves a shop by ID.
func (c *Client) GetShop(ctx context.Context, shopID string) (*Shop, error) {
	if shopID == "" {
		return nil, errors.New("shop_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/shops/%s", c.config.BaseURL, shopID)
	var resp struct {
		Ok   bool  `json:"ok"`
		Shop *Shop `json:"shop"`
	}
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Shop, nil
}

// TopUpRequest credits a shop balance.
type TopUpRequest struct {
	Amount     int64  `json:"amount"`
	InvoiceURL string `json:"invoice_url,omitempty"`
}

// TopUp credits the shop balance and returns the ledger entry.
func (c *Client) TopUp(ctx context.Context, shopID string, req TopUpRequest) (*LedgerEntry, error) {
	if shopID == "" {
		return nil, errors.New("shop_id is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	endpoint := fmt.Sprintf("%s/api/shops/%s/topup", c.config.BaseURL, shopID)
	var resp struct {
		Ok         bool         `json:"ok"`
		LedgerItem *LedgerEntry `json:"ledger_item"`
	}
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return resp.LedgerItem, nil
}

// Ledger lists a shop's ledger entries, newest first.
func (c *Client) Ledger(ctx context.Context, shopID string) ([]LedgerEntry, error) {
	if shopID == "" {
		return nil, errors.New("shop_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/shops/%s/ledger", c.config.BaseURL, shopID)
	var resp struct {
		Ok     bool          `json:"ok"`
		Ledger []LedgerEntry `json:"ledger"`
	}
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Ledger, nil
}

// CreateJobRequest creates a job in a shop.
type CreateJobRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	GroupID     *string    `json:"group_id,omitempty"`
}

// CreateJob creates a job in the given shop.
func (c *Client) CreateJob(ctx context.Context, shopID string, req CreateJobRequest) (*Job, error) {
	if shopID == "" {
		return nil, errors.New("shop_id is required")
	}
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	endpoint := fmt.Sprintf("%s/api/shops/%s/jobs", c.config.BaseURL, shopID)
	var resp struct {
		Ok  bool `json:"ok"`
		Job *Job `json:"job"`
	}
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// GetJob retrieves a job with its active items.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	if jobID == "" {
		return nil, errors.New("job_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/jobs/%s", c.config.BaseURL, jobID)
	var resp struct {
		Ok  bool `json:"ok"`
		Job *Job `json:"job"`
	}
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Job, nil
}

// CreateJobItemRequest adds an item to a job.
type CreateJobItemRequest struct {
	Title               string  `json:"title"`
	Quantity            int     `json:"quantity"`
	FileURL             string  `json:"file_url,omitempty"`
	FileName            string  `json:"file_name,omitempty"`
	FileType            string  `json:"file_type,omitempty"`
	ResourceTypeID      *string `json:"resource_type_id,omitempty"`
	ResourceID          *string `json:"resource_id,omitempty"`
	MaterialID          *string `json:"material_id,omitempty"`
	SecondaryMaterialID *string `json:"secondary_material_id,omitempty"`
}

// CreateJobItem adds an item to an open job.
func (c *Client) CreateJobItem(ctx context.Context, jobID string, req CreateJobItemRequest) (*JobItem, error) {
	if jobID == "" {
		return nil, errors.New("job_id is required")
	}
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	endpoint := fmt.Sprintf("%s/api/jobs/%s/items", c.config.BaseURL, jobID)
	var resp struct {
		Ok   bool     `json:"ok"`
		Item *JobItem `json:"item"`
	}
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// CostingResponse is the costing rollup of a job. ItemErrors maps item IDs
// to the reason they could not be costed.
type CostingResponse struct {
	Job        *Job              `json:"job"`
	Aggregate  *JobAggregate     `json:"aggregate"`
	ItemErrors map[string]string `json:"item_errors,omitempty"`
}

// JobCosting returns the cost rollup of a job without finalizing it.
func (c *Client) JobCosting(ctx context.Context, jobID string) (*CostingResponse, error) {
	if jobID == "" {
		return nil, errors.New("job_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/jobs/%s/costing", c.config.BaseURL, jobID)
	var resp CostingResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FinalizeResponse reports the outcome of a finalization.
type FinalizeResponse struct {
	Job                 *Job          `json:"job"`
	Aggregate           *JobAggregate `json:"aggregate"`
	LedgerItem          *LedgerEntry  `json:"ledger_item"`
	InsufficientBalance bool          `json:"insufficient_balance"`
}

// FinalizeJob closes a job and charges its total against the shop balance.
func (c *Client) FinalizeJob(ctx context.Context, jobID string) (*FinalizeResponse, error) {
	if jobID == "" {
		return nil, errors.New("job_id is required")
	}

	endpoint := fmt.Sprintf("%s/api/jobs/%s/finalize", c.config.BaseURL, jobID)
	var resp FinalizeResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthorizeUploadRequest asks whether the caller may upload into a scope.
// Metadata identifies the target entity; its shape depends on the scope.
type AuthorizeUploadRequest struct {
	Scope    string          `json:"scope"`
	Metadata json.RawMessage `json:"metadata"`
}

// AuthorizeUpload checks upload permission for a scope before any bytes
// are transferred.
func (c *Client) AuthorizeUpload(ctx context.Context, req AuthorizeUploadRequest) error {
	if req.Scope == "" {
		return errors.New("scope is required")
	}

	endpoint := fmt.Sprintf("%s/api/uploads/authorize", c.config.BaseURL)
	var resp struct {
		Ok bool `json:"ok"`
	}
	return c.post(ctx, endpoint, req, &resp)
}

// UploadedFile describes a file the store accepted.
type UploadedFile struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	SizeBytes int64  `json:"size_bytes"`
}

// CompleteUploadRequest registers a finished upload against its scope.
type CompleteUploadRequest struct {
	Scope    string          `json:"scope"`
	Metadata json.RawMessage `json:"metadata"`
	File     UploadedFile    `json:"file"`
}

// CompleteUpload registers a finished upload. The server re-authorizes the
// scope before recording anything.
func (c *Client) CompleteUpload(ctx context.Context, req CompleteUploadRequest) error {
	if req.Scope == "" {
		return errors.New("scope is required")
	}
	if req.File.URL == "" || req.File.Name == "" {
		return errors.New("file url and name are required")
	}

	endpoint := fmt.Sprintf("%s/api/uploads/complete", c.config.BaseURL)
	var resp struct {
		Ok bool `json:"ok"`
	}
	return c.post(ctx, endpoint, req, &resp)
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Marshal request to JSON
	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	return c.send(httpReq, resp)
}

// get performs a GET request to the specified endpoint and unmarshals the response into the specified response object
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	return c.send(httpReq, resp)
}

func (c *Client) authorize(req *http.Request) {
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}
}

// send executes the request and decodes either the response object or a
// standardized API error.
func (c *Client) send(httpReq *http.Request, resp interface{}) error {
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Try to decode error response
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
