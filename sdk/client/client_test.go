package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	// Test with custom config
	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.BaseURL != "http://example.com" {
		t.Errorf("Expected custom BaseURL, got %s", client.config.BaseURL)
	}
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("Expected /api/auth/login path, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Email != "kay@example.com" || req.Password != "hunter22!" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "invalid credentials"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{
			Ok:    true,
			User:  &User{ID: "u-1", FirstName: "Kay", Email: "kay@example.com"},
			Token: "tok-abc",
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	user, err := client.Login(context.Background(), "kay@example.com", "hunter22!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.ID != "u-1" {
		t.Errorf("Expected user u-1, got %s", user.ID)
	}
	if client.config.Token != "tok-abc" {
		t.Errorf("Expected token to be stored, got %q", client.config.Token)
	}

	// Bad credentials surface as an APIError
	if _, err := client.Login(context.Background(), "kay@example.com", "wrong"); err == nil {
		t.Error("Expected error for bad credentials")
	} else if apiErr, ok := err.(*APIError); !ok {
		t.Errorf("Expected APIError, got %T", err)
	} else if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apiErr.StatusCode)
	}

	// Missing credentials rejected locally
	if _, err := client.Login(context.Background(), "", ""); err == nil {
		t.Error("Expected error for empty credentials")
	}
}

func TestAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Expected bearer token header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "user": &User{ID: "u-1"}})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok-abc"})
	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestCreateJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shops/shop-1/jobs" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			http.Error(w, "Missing title", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":  true,
			"job": &Job{ID: "job-1", Title: req.Title, Status: "PENDING", ShopID: "shop-1"},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	job, err := client.CreateJob(context.Background(), "shop-1", CreateJobRequest{Title: "Bracket run"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if job.ID != "job-1" || job.Status != "PENDING" {
		t.Errorf("Unexpected job %+v", job)
	}

	// Missing fields rejected locally
	if _, err := client.CreateJob(context.Background(), "", CreateJobRequest{Title: "x"}); err == nil {
		t.Error("Expected error for missing shop_id")
	}
	if _, err := client.CreateJob(context.Background(), "shop-1", CreateJobRequest{}); err == nil {
		t.Error("Expected error for missing title")
	}
}

func TestFinalizeJob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/api/jobs/job-1/finalize" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":                   true,
			"job":                  &Job{ID: "job-1", Finalized: true},
			"aggregate":            &JobAggregate{TotalCost: 6200, ItemsCount: 3, CompletedCount: 3},
			"ledger_item":          &LedgerEntry{ID: "led-1", Type: "JOB", Amount: -6200},
			"insufficient_balance": true,
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	resp, err := client.FinalizeJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.Job.Finalized {
		t.Error("Expected finalized job")
	}
	if resp.Aggregate.TotalCost != 6200 {
		t.Errorf("Expected total cost 6200, got %d", resp.Aggregate.TotalCost)
	}
	if resp.LedgerItem.Amount != -6200 {
		t.Errorf("Expected charge of -6200, got %d", resp.LedgerItem.Amount)
	}
	if !resp.InsufficientBalance {
		t.Error("Expected insufficient balance flag")
	}

	if _, err := client.FinalizeJob(context.Background(), ""); err == nil {
		t.Error("Expected error for missing job_id")
	}
}

func TestJobCosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":        true,
			"job":       &Job{ID: "job-1"},
			"aggregate": &JobAggregate{TotalCost: 500, ItemsCount: 2},
			"item_errors": map[string]string{
				"item-2": "missing usage data",
			},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	resp, err := client.JobCosting(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Aggregate.TotalCost != 500 {
		t.Errorf("Expected total cost 500, got %d", resp.Aggregate.TotalCost)
	}
	if resp.ItemErrors["item-2"] != "missing usage data" {
		t.Errorf("Expected item error, got %v", resp.ItemErrors)
	}
}

func TestAuthorizeUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/uploads/authorize" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req AuthorizeUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.Scope != "job.fileupload" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "unauthorized"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "scope": req.Scope})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	meta, _ := json.Marshal(map[string]string{"job_id": "job-1"})
	err := client.AuthorizeUpload(context.Background(), AuthorizeUploadRequest{
		Scope:    "job.fileupload",
		Metadata: meta,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err = client.AuthorizeUpload(context.Background(), AuthorizeUploadRequest{
		Scope:    "shop.logo",
		Metadata: meta,
	})
	if err == nil {
		t.Error("Expected error for denied scope")
	}

	if err := client.AuthorizeUpload(context.Background(), AuthorizeUploadRequest{}); err == nil {
		t.Error("Expected error for missing scope")
	}
}

func TestCompleteUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/uploads/complete" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req CompleteUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if req.File.URL == "" {
			http.Error(w, "Missing file", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	meta, _ := json.Marshal(map[string]string{"job_id": "job-1"})
	err := client.CompleteUpload(context.Background(), CompleteUploadRequest{
		Scope:    "job.fileupload",
		Metadata: meta,
		File:     UploadedFile{URL: "https://files.example.com/a.stl", Name: "a.stl", SizeBytes: 1024},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Missing file details rejected locally
	err = client.CompleteUpload(context.Background(), CompleteUploadRequest{
		Scope:    "job.fileupload",
		Metadata: meta,
	})
	if err == nil {
		t.Error("Expected error for missing file details")
	}
}

func TestTopUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shops/shop-1/topup" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          true,
			"ledger_item": &LedgerEntry{ID: "led-1", Type: "TOPUP", Amount: req.Amount},
		})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	entry, err := client.TopUp(context.Background(), "shop-1", TopUpRequest{Amount: 5000})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.Amount != 5000 {
		t.Errorf("Expected amount 5000, got %d", entry.Amount)
	}

	if _, err := client.TopUp(context.Background(), "shop-1", TopUpRequest{Amount: 0}); err == nil {
		t.Error("Expected error for non-positive amount")
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "job already finalized"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Token: "tok"})

	_, err := client.FinalizeJob(context.Background(), "job-1")
	if err == nil {
		t.Fatal("Expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "job already finalized" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}
