package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/career-mentor/internal/config"
	"github.com/jonathan/career-mentor/internal/jobs"
	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/render"
	"github.com/jonathan/career-mentor/internal/session"
	"github.com/jonathan/career-mentor/internal/taxonomy"
)

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive mentoring session",
	Long: `Starts a chat session with CareerMate. Type freely; messages are
classified as skill statements, domain mentions, or conversation.

Slash commands inside the session:
  /role <number>    choose a suggested role (generates roadmap, resources, jobs)
  /domain <name>    revisit a previously explored domain
  /domains          list explored domains
  /jobs             refresh job listings for the selected role
  /roadmap          reprint the roadmap for the selected role
  /quit             end the session

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values; missing credentials fall back to the
GEMINI_API_KEY and RAPIDAPI_KEY environment variables.`,
	RunE: runChatCmd,
}

var (
	chatConfigPath string
	chatAPIKey     string
	chatJobsAPIKey string
	chatModel      string
	chatRegion     string
	chatVerbose    bool
)

func init() {
	chatCommand.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCommand.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	chatCommand.Flags().StringVar(&chatJobsAPIKey, "jobs-api-key", "", "RapidAPI key for job search (optional, defaults to RAPIDAPI_KEY env var)")
	chatCommand.Flags().StringVar(&chatModel, "model", "", "Override the conversational model")
	chatCommand.Flags().StringVar(&chatRegion, "region", "", "Region appended to job search queries (default India)")
	chatCommand.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print debug-level logs")

	rootCmd.AddCommand(chatCommand)
}

func runChatCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveChatConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	completer, closeCompleter, err := newCompleter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCompleter()

	jobsClient := jobs.NewClient(&jobs.Options{
		APIKey:  cfg.JobsAPIKey,
		Region:  cfg.Region,
		Timeout: time.Duration(cfg.JobsTimeoutSeconds) * time.Second,
	})
	if !jobsClient.Configured() {
		logger.Info("RAPIDAPI_KEY not set; job search will return sample listings")
	}

	machine := session.NewMachine(completer, jobsClient, logger)
	printer := render.NewPrinter(os.Stdout)

	fmt.Println("CareerMate — your AI mentor. Type a message, or /quit to leave.")
	logger.Debug("session started", zap.String("session", machine.State().ID.String()))

	printed := 0
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleSlashCommand(ctx, line, machine, printer); quit {
				break
			}
			printed = len(machine.State().History)
			continue
		}

		machine.HandleUserMessage(ctx, line)
		printed = printer.PrintNewMessages(machine.State(), printed)
		printer.PrintSuggestedRoles(machine.State())
	}

	return scanner.Err()
}

// handleSlashCommand dispatches one /command line; it returns true when
// the session should end.
func handleSlashCommand(ctx context.Context, line string, machine *session.Machine, printer *render.Printer) bool {
	fields := strings.Fields(line)
	state := machine.State()

	switch fields[0] {
	case "/quit", "/exit":
		fmt.Println("Good luck out there!")
		return true

	case "/role":
		if len(fields) < 2 {
			fmt.Println("Usage: /role <number>")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(state.SuggestedRoles) {
			fmt.Printf("Pick a role between 1 and %d.\n", len(state.SuggestedRoles))
			return false
		}
		role := state.SuggestedRoles[n-1].Title
		fmt.Printf("Preparing your %s roadmap...\n", role)
		machine.SelectRole(ctx, role)
		printer.PrintRoadmap(state)
		printer.PrintJobs(state)

	case "/domain":
		if len(fields) < 2 {
			fmt.Println("Usage: /domain <name>")
			return false
		}
		domain := taxonomy.Domain(strings.ToLower(fields[1]))
		if !seenDomain(state, domain) {
			fmt.Printf("You haven't explored %q yet. Use /domains to list them.\n", fields[1])
			return false
		}
		machine.SelectDomainFromHistory(domain)
		printer.PrintSuggestedRoles(state)

	case "/domains":
		printer.PrintDomainsSeen(state)

	case "/jobs":
		if state.SelectedRole == "" {
			fmt.Println("Choose a role first with /role <number>.")
			return false
		}
		machine.RefreshJobs(ctx)
		printer.PrintJobs(state)

	case "/roadmap":
		if state.Roadmap == "" {
			fmt.Println("No roadmap yet. Choose a role first with /role <number>.")
			return false
		}
		printer.PrintRoadmap(state)

	default:
		fmt.Printf("Unknown command %s. Try /role, /domain, /domains, /jobs, /roadmap, /quit.\n", fields[0])
	}
	return false
}

func seenDomain(state *session.State, domain taxonomy.Domain) bool {
	for _, d := range state.DomainsSeen {
		if d == domain {
			return true
		}
	}
	return false
}

// resolveChatConfig merges config file values, explicit flags, and
// environment variables, in that order of increasing precedence for
// flags and decreasing for env.
func resolveChatConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config

	if chatConfigPath != "" {
		loaded, err := config.LoadConfig(chatConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// CLI overrides apply only when the flag was explicitly set.
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = chatAPIKey
	}
	if cmd.Flags().Changed("jobs-api-key") {
		cfg.JobsAPIKey = chatJobsAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = chatModel
	}
	if cmd.Flags().Changed("region") {
		cfg.Region = chatRegion
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = chatVerbose
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		Region:             jobs.DefaultRegion,
		JobsTimeoutSeconds: 8,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newCompleter builds the completion collaborator. A missing key is
// not fatal: the session runs with a stub that degrades every reply to
// the inline warning string.
func newCompleter(ctx context.Context, cfg config.Config, logger *zap.Logger) (session.Completer, func(), error) {
	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; mentor replies will degrade to a warning")
		return llm.Unconfigured{}, func() {}, nil
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, func() { _ = client.Close() }, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if verbose {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return logConfig.Build()
}
