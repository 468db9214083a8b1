package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	MigrateOnStart  bool
	RateLimitPeriod time.Duration
	RateLimitCount  int64

	// labels maps a label domain ("balances", "transactions", "accounts")
	// to its code -> display label table. Codes without an entry are shown
	// as-is by the translator.
	labels map[string]map[string]string
}

// Label implements the translator's configuration lookup.
func (c *Config) Label(labelDomain string, code string) (string, bool) {
	label, ok := c.labels[labelDomain][code]
	return label, ok
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATE_ON_START", true)
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_COUNT", 300)

	// Display labels for enumerated codes. Overridable per deployment, e.g.
	// LABELS_BALANCES_D=Soll for a German ledger front end.
	viper.SetDefault("LABELS_BALANCES_D", "Debit")
	viper.SetDefault("LABELS_BALANCES_C", "Credit")
	viper.SetDefault("LABELS_TRANSACTIONS_JN", "Journal Entry")
	viper.SetDefault("LABELS_TRANSACTIONS_IN", "Client Invoice")
	viper.SetDefault("LABELS_TRANSACTIONS_CN", "Credit Note")
	viper.SetDefault("LABELS_TRANSACTIONS_BL", "Supplier Bill")
	viper.SetDefault("LABELS_TRANSACTIONS_DN", "Debit Note")
	viper.SetDefault("LABELS_TRANSACTIONS_RC", "Client Receipt")
	viper.SetDefault("LABELS_TRANSACTIONS_PY", "Payment")
	viper.SetDefault("LABELS_TRANSACTIONS_CE", "Contra Entry")
	viper.SetDefault("LABELS_ACCOUNTS_NON_CURRENT_ASSET", "Non Current Asset")
	viper.SetDefault("LABELS_ACCOUNTS_CURRENT_ASSET", "Current Asset")
	viper.SetDefault("LABELS_ACCOUNTS_INVENTORY", "Inventory")
	viper.SetDefault("LABELS_ACCOUNTS_BANK", "Bank")
	viper.SetDefault("LABELS_ACCOUNTS_RECEIVABLE", "Receivable")
	viper.SetDefault("LABELS_ACCOUNTS_PAYABLE", "Payable")
	viper.SetDefault("LABELS_ACCOUNTS_CURRENT_LIABILITY", "Current Liability")
	viper.SetDefault("LABELS_ACCOUNTS_NON_CURRENT_LIABILITY", "Non Current Liability")
	viper.SetDefault("LABELS_ACCOUNTS_CONTROL", "Control Account")
	viper.SetDefault("LABELS_ACCOUNTS_EQUITY", "Equity")
	viper.SetDefault("LABELS_ACCOUNTS_RECONCILIATION", "Reconciliation")
	viper.SetDefault("LABELS_ACCOUNTS_OPERATING_REVENUE", "Operating Revenue")
	viper.SetDefault("LABELS_ACCOUNTS_NON_OPERATING_REVENUE", "Non Operating Revenue")
	viper.SetDefault("LABELS_ACCOUNTS_OPERATING_EXPENSE", "Operating Expense")
	viper.SetDefault("LABELS_ACCOUNTS_DIRECT_EXPENSE", "Direct Expense")
	viper.SetDefault("LABELS_ACCOUNTS_OVERHEAD_EXPENSE", "Overhead Expense")
	viper.SetDefault("LABELS_ACCOUNTS_OTHER_EXPENSE", "Other Expense")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrateOnStart = viper.GetBool("MIGRATE_ON_START")

	rateLimitPeriodStr := viper.GetString("RATE_LIMIT_PERIOD")
	rateLimitPeriod, err := time.ParseDuration(rateLimitPeriodStr)
	if err != nil {
		rateLimitPeriod = time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", rateLimitPeriodStr, rateLimitPeriod.String())
	}
	cfg.RateLimitPeriod = rateLimitPeriod
	cfg.RateLimitCount = viper.GetInt64("RATE_LIMIT_COUNT")

	cfg.labels = loadLabels()

	return cfg, nil
}

// loadLabels collects every LABELS_<DOMAIN>_<CODE> key viper knows about
// into the nested lookup table.
func loadLabels() map[string]map[string]string {
	labels := make(map[string]map[string]string)
	for _, key := range viper.AllKeys() {
		upper := strings.ToUpper(key)
		if !strings.HasPrefix(upper, "LABELS_") {
			continue
		}
		rest := strings.TrimPrefix(upper, "LABELS_")
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 {
			continue
		}
		labelDomain := strings.ToLower(parts[0])
		code := parts[1]
		if labels[labelDomain] == nil {
			labels[labelDomain] = make(map[string]string)
		}
		labels[labelDomain][code] = viper.GetString(key)
	}
	return labels
}
