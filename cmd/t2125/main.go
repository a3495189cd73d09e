package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log = logrus.New()

	flagDB      string
	flagUser    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "t2125",
	Short: "T2125 tax statement calculator for gig-economy drivers",
	Long: `t2125 turns a driver's ledger of income, expenses, mileage and
capital assets into a complete CRA form T2125 statement, with the 50%
meals limit, motor-vehicle business-use proration and capital cost
allowance applied.

Ledger records come from a YAML file (--input) or the local SQLite
database (--db / T2125_DB).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	defaultDB := os.Getenv("T2125_DB")
	if defaultDB == "" {
		defaultDB = "data/t2125.db"
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", defaultDB, "path to the SQLite ledger database")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "default", "ledger owner identifier")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
