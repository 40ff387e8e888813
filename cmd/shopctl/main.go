// cmd/shopctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/openfab/printhub/internal/config"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
	"github.com/openfab/printhub/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dryRun  bool
	timeout time.Duration
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report drift without correcting balances")
	reconcileCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time to run reconciliation")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(grantAdminCmd)
	rootCmd.AddCommand(suspendCmd)
}

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Shopctl is the operator CLI for the shop platform",
	Long:  `Shopctl manages database schema, account flags, and balance reconciliation for the shop platform.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Run gorm auto-migration for all platform tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := setupDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		err = db.AutoMigrate(
			&model.User{},
			&model.Shop{},
			&model.UserShop{},
			&model.BillingGroup{},
			&model.UserBillingGroup{},
			&model.Job{},
			&model.JobItem{},
			&model.ResourceType{},
			&model.Resource{},
			&model.ResourceImage{},
			&model.Material{},
			&model.LedgerItem{},
			&model.AuditLog{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile shop balances against the ledger",
	Long:  `Compare each shop's stored balance against the sum of its ledger items and correct any drift.`,
	Run: func(cmd *cobra.Command, args []string) {
		slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(slogger)

		db, err := setupDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		shopRepo := repository.NewShopRepository(db)
		ledgerRepo := repository.NewLedgerRepository(db)

		// Interval doesn't matter for a one-time run
		reconciler := service.NewBalanceReconciliationService(shopRepo, ledgerRepo, 0, slogger)
		reconciler.SetDryRun(dryRun)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		drifts, err := reconciler.ReconcileAll(ctx)
		if err != nil {
			log.Fatalf("Reconciliation failed: %v", err)
		}

		if len(drifts) == 0 {
			fmt.Println("All shop balances match the ledger")
			return
		}

		for _, d := range drifts {
			fmt.Printf("%s (%s): stored=%d ledger=%d delta=%d\n",
				d.ShopName, d.ShopID, d.Stored, d.LedgerSum, d.Delta)
		}

		if dryRun {
			fmt.Printf("%d shop(s) drifted; no corrections applied (dry run)\n", len(drifts))
		} else {
			fmt.Printf("%d shop(s) corrected\n", len(drifts))
		}
	},
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin [email]",
	Short: "Grant platform admin to a user",
	Long:  `Set the admin flag on the user with the given email address.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := setupDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		userRepo := repository.NewUserRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := userRepo.FindByEmail(ctx, args[0])
		if err != nil {
			log.Fatalf("Failed to find user: %v", err)
		}

		if user.Admin {
			fmt.Printf("%s is already an admin\n", user.Email)
			return
		}

		user.Admin = true
		if err := userRepo.Update(ctx, user); err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}

		fmt.Printf("Granted admin to %s\n", user.Email)
	},
}

var suspendCmd = &cobra.Command{
	Use:   "suspend [email]",
	Short: "Suspend or reinstate a user",
	Long:  `Toggle the suspended flag on the user with the given email address.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := setupDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		userRepo := repository.NewUserRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := userRepo.FindByEmail(ctx, args[0])
		if err != nil {
			log.Fatalf("Failed to find user: %v", err)
		}

		user.Suspended = !user.Suspended
		if err := userRepo.Update(ctx, user); err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}

		if user.Suspended {
			fmt.Printf("Suspended %s\n", user.Email)
		} else {
			fmt.Printf("Reinstated %s\n", user.Email)
		}
	},
}

func setupDatabase() (*gorm.DB, error) {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
