package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/steg-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("steg-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("steg-mcp - MCP server for hiding text in images")
			fmt.Println()
			fmt.Println("Usage: steg-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  STEG_MCP_LOG_LEVEL=debug            Log level (trace, debug, info, warn, error)")
			fmt.Println("  STEG_MCP_MAX_CARRIER_BYTES=16777216 Largest image file accepted")
			fmt.Println("  STEG_MCP_USE_ALPHA=false            Embed in the alpha channel by default")
			fmt.Println("  STEG_MCP_OUTPUT_FORMAT=png          Default output format (png, bmp, tiff, qoi)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	if v := os.Getenv("STEG_MCP_LOG_LEVEL"); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			log.WithField("value", v).Warn("Unknown log level, using info")
		} else {
			log.SetLevel(level)
		}
	}

	log.WithFields(log.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Steg MCP Server starting")

	srv := server.New(server.ConfigFromEnv())
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("Server error")
	}
}
