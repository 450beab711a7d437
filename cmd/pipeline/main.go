// Command pipeline runs the full conversation flow against a profile
// JSON document from the terminal: two clarification turns on stdin,
// then the generated dashboard configuration on stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dashgen/config"
	chartspecUC "dashgen/internal/chartspec/usecase"
	conversationUC "dashgen/internal/conversation/usecase"
	"dashgen/internal/dataset"
	"dashgen/internal/dataset/profilejson"
	"dashgen/internal/insight"
	sessionRepo "dashgen/internal/session/repository/file"
	sessionUC "dashgen/internal/session/usecase"
	"dashgen/pkg/llmprovider"
	"dashgen/pkg/log"
)

func main() {
	profilePath := flag.String("profile", "", "path to a profile JSON document (default: built-in sample)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize LLM providers:", err)
		os.Exit(1)
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)

	store, err := sessionRepo.New(logger, cfg.Storage.SessionDir, cfg.Storage.MirrorEnabled)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize session store:", err)
		os.Exit(1)
	}
	sessions := sessionUC.New(logger, store, cfg.Conversation.SessionCacheSize, 30*time.Minute)

	p := dataset.SampleProfile()
	if *profilePath != "" {
		p, err = profilejson.New().Profile(ctx, *profilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load profile:", err)
			os.Exit(1)
		}
	}

	convUC := conversationUC.New(logger, sessions, insight.NewSource(logger, manager))

	out, err := convUC.Initialize(ctx, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to start conversation:", err)
		os.Exit(1)
	}

	fmt.Printf("Session: %s\n\n%s\n", out.SessionID, out.Message)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stderr, "Input closed, ending conversation")
			os.Exit(1)
		}

		reply, err := convUC.Send(ctx, out.SessionID, scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to process reply:", err)
			os.Exit(1)
		}

		fmt.Printf("\n%s\n", reply.Message)
		if reply.Done {
			break
		}
	}

	csUC := chartspecUC.New(logger, sessions, manager)
	dashboard, err := csUC.Generate(ctx, out.SessionID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to generate dashboard:", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(dashboard, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to encode dashboard:", err)
		os.Exit(1)
	}
	fmt.Printf("\n%s\n", encoded)
}
