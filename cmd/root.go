package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/kmaina/sokoboard/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	           _         _                         _
	 ___  ___ | | _____ | |__   ___   __ _ _ __ __| |
	/ __|/ _ \| |/ / _ \| '_ \ / _ \ / _` + "`" + ` | '__/ _` + "`" + ` |
	\__ \ (_) |   < (_) | |_) | (_) | (_| | | | (_| |
	|___/\___/|_|\_\___/|_.__/ \___/ \__,_|_|  \__,_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sokoboard",
	Short: "A live market board for Kenyan farmers and buyers.",
	Long: LOGO + `sokoboard simulates a farmer/buyer marketplace right from your command line:
live crop prices, farm statistics, buyer directory, listings and price alerts,
enriched with real exchange-rate and weather data when online.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sokoboard.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().Bool("offline", false, "Start offline: skip external fetches and suspend scheduled refreshes")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".sokoboard")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.sokoboard.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("currency.base", "USD")
	viper.SetDefault("currency.symbol", "KES")
	viper.SetDefault("rate.endpoint", "")
	viper.SetDefault("rate.fallback", 140)
	viper.SetDefault("weather.endpoint", "")
	viper.SetDefault("weather.latitude", -1.2921)
	viper.SetDefault("weather.longitude", 36.8219)
	viper.SetDefault("refresh.dashboard_seconds", 10)
	viper.SetDefault("refresh.market_seconds", 15)
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
