package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/speedsolve/cubecomp/internal/app"
	"github.com/speedsolve/cubecomp/internal/auth"
	"github.com/speedsolve/cubecomp/internal/config"
	"github.com/speedsolve/cubecomp/internal/logger"
	"github.com/speedsolve/cubecomp/pkg/scrambler"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var (
	version = "dev"
)

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	var next string
	switch appLog.GetLevel().String() {
	case "DEBUG":
		next = "info"
	case "INFO":
		next = "warn"
	case "WARN":
		next = "error"
	default:
		next = "debug"
	}

	appLog.SetLevel(logger.ParseLevel(next))
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %sm%s      - Open competition status in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug, info, warn, error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

func main() {
	configPath := flag.String("config", "", "YAML config file path")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	scramblerURL := flag.String("scrambler", "", "Scramble service base URL (overrides config)")
	moderatorPw := flag.String("moderatorpw", "", "Moderator password (auto-generated if not set)")
	logLevel := flag.String("loglevel", "", "Log level (debug, info, warn, error)")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `cubecomp - Weekly Cubing Competition Server

Usage:
  cubecomp [options]

Options:
  -config str      YAML config file path
  -port int        HTTP server port (default 8080)
  -db string       SQLite database path (default "cubecomp.db")
  -scrambler str   Scramble service base URL (default "http://localhost:2014")
  -moderatorpw str Moderator password (auto-generated if not set)
  -loglevel str    Log level: debug, info, warn, error (default "info")
  -nokeyboard      Disable keyboard shortcuts
  -version         Show version and exit
  -help            Show this help message

Flags override values from the config file.

Examples:
  cubecomp                              # Run with defaults
  cubecomp -config cubecomp.yml         # Load settings from a file
  cubecomp -port 80 -db /data/comp.db   # Production example
  cubecomp -moderatorpw secret123       # Use a fixed moderator password

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("cubecomp %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *scramblerURL != "" {
		cfg.ScrambleServiceURL = *scramblerURL
	}
	if *moderatorPw != "" {
		cfg.ModeratorPassword = *moderatorPw
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Setup moderator authentication
	password := cfg.ModeratorPassword
	if password == "" {
		password = auth.GeneratePassword()
	}
	moderatorAuth := auth.New(password)

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	scrambleClient := scrambler.NewHTTPClient(cfg.ScrambleServiceURL, appLog)

	a, err := app.New(appLog, cfg, scrambleClient, moderatorAuth)
	if err != nil {
		log.Fatal("Failed to initialize application: ", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", cfg.Port)
	appLog.Info("Moderator password", "password", password)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	statusURL := fmt.Sprintf("http://localhost:%d/api/competition", cfg.Port)

	if !*noKeyboard {
		printKeyboardHelp()
		go listenForKeyboard(statusURL, appLog)
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled%s\n\n", yellow, reset)
	}

	if err := <-serverErr; err != nil {
		log.Fatal(err)
	}
}
