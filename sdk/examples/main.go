package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/openfab/printhub/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:8080"
	email      = "operator@example.com"
	password   = "changeme123!"
	shopID     = "00000000-0000-0000-0000-000000000001"
)

func main() {
	// Initialize the client
	config := &client.Config{
		BaseURL: serviceURL,
		Timeout: 10 * time.Second,
	}
	c := client.NewClient(config)

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Run the example
	if err := runExample(ctx, c); err != nil {
		log.Fatalf("Error running example: %v", err)
	}
}

func runExample(ctx context.Context, c *client.Client) error {
	fmt.Println("Running shop SDK example...")

	// Step 1: Authenticate
	fmt.Println("\n1. Logging in...")
	user, err := c.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	fmt.Printf("Logged in as %s %s\n", user.FirstName, user.LastName)

	// Step 2: Pick a shop
	fmt.Println("\n2. Loading shop...")
	shop, err := c.GetShop(ctx, shopID)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}
	fmt.Printf("Shop: %s\n", shop.Name)
	if shop.Balance != nil {
		fmt.Printf("Balance: %d\n", *shop.Balance)
	}

	// Step 3: Create a job with one item
	fmt.Println("\n3. Creating a job...")
	job, err := c.CreateJob(ctx, shop.ID, client.CreateJobRequest{
		Title:       "Mounting brackets",
		Description: "Six aluminum brackets, anodized",
	})
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	fmt.Printf("Job created: %s (%s)\n", job.Title, job.ID)

	item, err := c.CreateJobItem(ctx, job.ID, client.CreateJobItemRequest{
		Title:    "bracket.stl",
		Quantity: 6,
		FileURL:  "https://files.example.com/bracket.stl",
		FileName: "bracket.stl",
		FileType: "model/stl",
	})
	if err != nil {
		return fmt.Errorf("failed to create job item: %w", err)
	}
	fmt.Printf("Item added: %s x%d\n", item.Title, item.Quantity)

	// Step 4: Authorize a file upload for the job
	fmt.Println("\n4. Authorizing upload...")
	meta, _ := json.Marshal(map[string]string{"job_id": job.ID})
	if err := c.AuthorizeUpload(ctx, client.AuthorizeUploadRequest{
		Scope:    "job.fileupload",
		Metadata: meta,
	}); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Printf("Upload not authorized: %s\n", apiErr.Message)
		} else {
			return fmt.Errorf("failed to authorize upload: %w", err)
		}
	} else {
		fmt.Println("Upload authorized")
	}

	// Step 5: Preview the job cost
	fmt.Println("\n5. Previewing cost...")
	costing, err := c.JobCosting(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch costing: %w", err)
	}
	fmt.Printf("Items: %d, total cost so far: %d\n",
		costing.Aggregate.ItemsCount, costing.Aggregate.TotalCost)
	for itemID, reason := range costing.ItemErrors {
		fmt.Printf("- item %s not costable: %s\n", itemID, reason)
	}

	// Step 6: Finalize once the work is done. A freshly created job will
	// be refused here, which is the expected outcome of this example.
	fmt.Println("\n6. Finalizing job...")
	result, err := c.FinalizeJob(ctx, job.ID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Printf("Finalize refused: %s\n", apiErr.Message)
			fmt.Println("\nExample completed.")
			return nil
		}
		return fmt.Errorf("failed to finalize job: %w", err)
	}
	fmt.Printf("Job finalized, charged %d\n", -result.LedgerItem.Amount)
	if result.InsufficientBalance {
		fmt.Println("Warning: shop balance went negative")
	}

	fmt.Println("\nExample completed.")
	return nil
}
