package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/nikhilx/zomato-spend-analyzer/internal/analytics"
	"github.com/nikhilx/zomato-spend-analyzer/internal/config"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/port"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/service"
	"github.com/nikhilx/zomato-spend-analyzer/internal/extract"
	"github.com/nikhilx/zomato-spend-analyzer/internal/mbox"
	"github.com/nikhilx/zomato-spend-analyzer/internal/server"
	"github.com/nikhilx/zomato-spend-analyzer/internal/storage"
)

const usageText = `Zomato spend analyzer

Usage: zomalytics <command> [flags]

Commands:
  ingest <mbox> [-v]        Ingest a full MBOX archive
  import [--mbox p] [--force]  Incremental import since the last sync
  stats                     Show overall statistics
  year-wise                 Show year-wise analytics
  month-wise <year>         Show month-wise analytics for a year
  restaurants [-n N]        Show top restaurants by spend
  export <file>             Export data to JSON
  serve [--addr a]          Serve the read-only stats API
`

func main() {
	log.SetFormatter(&log.TextFormatter{})

	if len(os.Args) < 2 {
		fmt.Print(usageText)
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "ingest":
		runIngest(ctx, cfg, args)
	case "import":
		runImport(ctx, cfg, args)
	case "stats":
		runStats(ctx, cfg)
	case "year-wise":
		runYearWise(ctx, cfg)
	case "month-wise":
		runMonthWise(ctx, cfg, args)
	case "restaurants":
		runRestaurants(ctx, cfg, args)
	case "export":
		runExport(ctx, cfg, args)
	case "serve":
		runServe(ctx, cfg, args)
	default:
		fmt.Print(usageText)
		os.Exit(2)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage.PostgresDB, *storage.OrderStorage) {
	db, err := storage.NewPostgresDB(ctx,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		log.Fatalf("Failed to prepare schema: %v", err)
	}
	return db, storage.NewOrderStorage(db)
}

func newImportService(cfg *config.Config, orders *storage.OrderStorage) port.ImportService {
	return service.NewImportService(
		orders,
		storage.NewFileWatermarkStore(cfg.WatermarkPath),
		extract.NewOrderExtractor(),
		cfg.Provider,
	)
}

func runIngest(ctx context.Context, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose output")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatal("Usage: zomalytics ingest <mbox> [-v]")
	}

	source, err := mbox.NewReader(fs.Arg(0))
	if err != nil {
		log.Fatalf("Cannot open archive: %v", err)
	}

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	fmt.Printf("Ingesting MBOX file: %s\n", fs.Arg(0))
	summary, err := newImportService(cfg, orders).Ingest(ctx, source, *verbose)
	if err != nil {
		log.Fatalf("Ingest failed: %v", err)
	}

	fmt.Println("Results:")
	fmt.Printf("  Inserted: %d\n", summary.Inserted)
	fmt.Printf("  Updated:  %d\n", summary.Updated)
	fmt.Printf("  Skipped:  %d\n", summary.Skipped)

	printStats(ctx, analytics.New(orders))
}

func runImport(ctx context.Context, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	mboxPath := fs.String("mbox", cfg.MboxPath, "path to MBOX file")
	force := fs.Bool("force", false, "force reprocess all emails")
	_ = fs.Parse(args)

	source, err := mbox.NewReader(*mboxPath)
	if err != nil {
		log.Fatalf("Cannot open archive: %v", err)
	}

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	summary, err := newImportService(cfg, orders).Run(ctx, source, *force)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Inserted=%d Updated=%d Skipped=%d\n", summary.Inserted, summary.Updated, summary.Skipped)
}

func runStats(ctx context.Context, cfg *config.Config) {
	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	a := analytics.New(orders)
	printStats(ctx, a)
	printYearWise(ctx, a)
}

func runYearWise(ctx context.Context, cfg *config.Config) {
	db, orders := openStorage(ctx, cfg)
	defer db.Close()
	printYearWise(ctx, analytics.New(orders))
}

func runMonthWise(ctx context.Context, cfg *config.Config, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: zomalytics month-wise <year>")
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("Invalid year: %s", args[0])
	}

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	months, err := analytics.New(orders).MonthWise(ctx, year)
	if err != nil {
		log.Fatalf("Failed to compute month-wise stats: %v", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println(center(fmt.Sprintf("MONTHLY ANALYTICS - %d", year), 60))
	fmt.Println(rule)
	fmt.Printf("%-10s %-15s %-20s %-15s\n", "Month", "Orders", "Total Spend", "Avg/Order")
	fmt.Println(strings.Repeat("-", 60))
	for _, m := range months {
		avg := m.Spend.DivRound(decimalFromInt(m.Orders), 2)
		fmt.Printf("%-10s %-15d ₹%17s ₹%13s\n",
			m.Month.String()[:3], m.Orders, m.Spend.StringFixed(2), avg.StringFixed(2))
	}
	fmt.Println(rule)
}

func runRestaurants(ctx context.Context, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("restaurants", flag.ExitOnError)
	limit := fs.Int("n", 15, "number of restaurants to show")
	_ = fs.Parse(args)

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	top, err := analytics.New(orders).TopRestaurants(ctx, *limit)
	if err != nil {
		log.Fatalf("Failed to rank restaurants: %v", err)
	}

	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println(center(fmt.Sprintf("TOP %d RESTAURANTS", *limit), 80))
	fmt.Println(rule)
	fmt.Printf("%-6s %-40s %-10s %-20s\n", "Rank", "Restaurant", "Orders", "Total Spend")
	fmt.Println(strings.Repeat("-", 80))
	for i, r := range top {
		name := r.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Printf("%-6d %-40s %-10d ₹%17s\n", i+1, name, r.Orders, r.Spend.StringFixed(2))
	}
	fmt.Println(rule)
}

func runExport(ctx context.Context, cfg *config.Config, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: zomalytics export <file>")
	}
	outPath := args[0]

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	a := analytics.New(orders)
	summary, err := a.Summary(ctx)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	yearWise, err := a.YearWise(ctx)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	topRestaurants, err := a.TopRestaurants(ctx, 100)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	monthlySeries, err := a.MonthlySeries(ctx)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	allOrders, err := orders.GetAllOrders(ctx)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	payload := map[string]any{
		"summary":         summary,
		"year_wise":       yearWise,
		"monthly_series":  monthlySeries,
		"top_restaurants": topRestaurants,
		"orders":          allOrders,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	fmt.Printf("Exported %d orders to %s\n", len(allOrders), outPath)
}

func runServe(ctx context.Context, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.HTTPAddr, "listen address")
	_ = fs.Parse(args)

	log.SetFormatter(&log.JSONFormatter{})

	db, orders := openStorage(ctx, cfg)
	defer db.Close()

	httpServer := server.NewHTTPServer(analytics.New(orders), orders)
	go func() {
		if err := httpServer.Start(*addr); err != nil {
			log.WithError(err).Info("HTTP server stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}

func printStats(ctx context.Context, a *analytics.Analytics) {
	summary, err := a.Summary(ctx)
	if err != nil {
		log.Fatalf("Failed to compute summary: %v", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(center("ZOMATO SPEND SUMMARY", 60))
	fmt.Println(rule)
	fmt.Printf("Total Orders:        %d\n", summary.TotalOrders)
	fmt.Printf("Total Spent:         ₹%s\n", summary.TotalSpend.StringFixed(2))
	fmt.Printf("Average Order Value: ₹%s\n", summary.AverageOrderValue.StringFixed(2))
	fmt.Printf("Total Delivery Fees: ₹%s\n", summary.TotalDeliveryFees.StringFixed(2))
	fmt.Printf("Total Discounts:     ₹%s\n", summary.TotalDiscounts.StringFixed(2))
	fmt.Println(rule)
}

func printYearWise(ctx context.Context, a *analytics.Analytics) {
	years, err := a.YearWise(ctx)
	if err != nil {
		log.Fatalf("Failed to compute year-wise stats: %v", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(center("YEAR-WISE ANALYTICS", 60))
	fmt.Println(rule)
	fmt.Printf("%-10s %-15s %-20s %-15s\n", "Year", "Orders", "Total Spend", "Avg/Order")
	fmt.Println(strings.Repeat("-", 60))
	for _, y := range years {
		avg := y.Spend.DivRound(decimalFromInt(y.Orders), 2)
		fmt.Printf("%-10d %-15d ₹%17s ₹%13s\n", y.Year, y.Orders, y.Spend.StringFixed(2), avg.StringFixed(2))
	}
	fmt.Println(rule)
}

func decimalFromInt(n int) decimal.Decimal {
	if n == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(n))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
