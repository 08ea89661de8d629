package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dcalab/internal/config"
	"dcalab/internal/dca"
	"dcalab/internal/loader"
	"dcalab/internal/recorder"
	"dcalab/internal/risk"
	"dcalab/pkg/model"
)

var (
	cfgFile    string
	csvFile    string
	format     string
	dbPath     string
	budget     float64
	trailing   int
	dateFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dcalab",
		Short: "Investment strategy and instrument risk analyzer",
		Long: `Dcalab evaluates investment strategies and instrument risk from CSV data:

Commands:
  simulate  - Replay a price history under periodic-purchase (DCA) strategies
  risk      - Score companies on five fundamental risk factors

Examples:
  dcalab simulate --csv spy.csv --budget 100 --trailing 90
  dcalab risk --csv fundamentals.csv --format json`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: table, json")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite path for recording runs (empty disables)")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Compare dollar-cost-averaging strategies over a price history",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&csvFile, "csv", "", "price CSV with Date and Close columns (required)")
	simulateCmd.Flags().Float64Var(&budget, "budget", 0, "weekly budget in dollars")
	simulateCmd.Flags().IntVar(&trailing, "trailing", 0, "trailing window in days")
	simulateCmd.Flags().StringVar(&dateFormat, "date-format", "", "CSV date format: dd/mm/yyyy, mm/dd/yyyy")
	simulateCmd.MarkFlagRequired("csv")

	riskCmd := &cobra.Command{
		Use:   "risk",
		Short: "Score company risk from fundamental metrics",
		RunE:  runRisk,
	}
	riskCmd.Flags().StringVar(&csvFile, "csv", "", "metrics CSV with identifier, PE, EPS, Beta, MarketCap, High52w, Low52w and Price columns (required)")
	riskCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(simulateCmd, riskCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Override config with CLI flags
	if budget > 0 {
		cfg.Simulation.WeeklyBudget = budget
	}
	if trailing > 0 {
		cfg.Simulation.TrailingDays = trailing
	}
	if dateFormat != "" {
		cfg.Simulation.DateFormat = dateFormat
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if dbPath != "" {
		cfg.Recorder.Path = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Recorder.Path == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.Recorder.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recorder disabled: %v\n", err)
		return recorder.NewNoopRecorder()
	}
	return rec
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	load, err := loader.LoadPrices(csvFile, loader.PriceOptions{
		DayFirst:     cfg.Simulation.DateFormat == "dd/mm/yyyy",
		TrailingDays: cfg.Simulation.TrailingDays,
	})
	if err != nil {
		return fmt.Errorf("loading prices: %w", err)
	}
	printWarnings(load.Warnings)

	strategies := dca.GenerateStrategies(cfg.Simulation.WeeklyBudget)
	cmp, err := dca.Compare(load.Series, strategies)
	if err != nil {
		return fmt.Errorf("comparing strategies: %w", err)
	}

	rec := openRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordComparison(uuid.NewString(), cmp); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recording comparison: %v\n", err)
	}

	if cfg.Output.Format == "json" {
		return outputJSON(cmp)
	}
	return outputComparisonTable(cmp)
}

func runRisk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	load, err := loader.LoadMetrics(csvFile)
	if err != nil {
		return fmt.Errorf("loading metrics: %w", err)
	}
	printWarnings(load.Warnings)

	if len(load.Metrics) == 0 {
		return fmt.Errorf("no scorable rows in %s", csvFile)
	}

	scores := make([]model.RiskScore, 0, len(load.Metrics))
	var bar *progressbar.ProgressBar
	if cfg.Output.Format == "table" && len(load.Metrics) > 100 {
		bar = progressbar.NewOptions(len(load.Metrics),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Scoring"),
		)
	}
	for _, m := range load.Metrics {
		scores = append(scores, risk.Score(m))
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}
	risk.SortByComposite(scores)

	rec := openRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordRiskScores(uuid.NewString(), scores); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recording scores: %v\n", err)
	}

	if cfg.Output.Format == "json" {
		return outputJSON(scores)
	}
	return outputRiskTable(scores)
}

func outputComparisonTable(cmp *model.ComparisonResult) error {
	fmt.Printf("Data: %s (%d trading days)\n\n", cmp.Period, cmp.DataPoints)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Strategy", "Invested", "Final Value", "Gain ($)", "Gain (%)", "Max DD (%)", "Buys"}),
	)

	var best *model.SimulationResult
	for i := range cmp.Results {
		r := &cmp.Results[i]
		if r.Strategy == cmp.Best {
			best = r
		}
		table.Append([]string{
			r.Strategy,
			fmt.Sprintf("$%.2f", r.TotalInvested),
			fmt.Sprintf("$%.2f", r.FinalValue),
			fmt.Sprintf("%+.2f", r.GainAbs),
			fmt.Sprintf("%+.2f%%", r.GainPct),
			fmt.Sprintf("%.2f%%", r.MaxDrawdownPct),
			fmt.Sprintf("%d", r.BuyCount),
		})
	}
	table.Render()

	if best != nil {
		fmt.Printf("\nBest strategy by total gain: %s with $%.2f gain (%.2f%%)\n",
			best.Strategy, best.GainAbs, best.GainPct)
	}
	return nil
}

func outputRiskTable(scores []model.RiskScore) error {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Symbol", "Val", "Prof", "Vol", "Size", "PxStr", "Score", "Rating"}),
	)

	for i, s := range scores {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			s.Identifier,
			fmt.Sprintf("%d", s.Valuation),
			fmt.Sprintf("%d", s.Profitability),
			fmt.Sprintf("%d", s.Volatility),
			fmt.Sprintf("%d", s.Size),
			fmt.Sprintf("%d", s.PriceStrength),
			fmt.Sprintf("%d", s.Composite),
			s.Label,
		})
	}
	table.Render()

	fmt.Printf("\nScored %d companies\n", len(scores))
	return nil
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
