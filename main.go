package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var engineLog *log.Logger

const workerStaggerDelay = 50 * time.Millisecond

type options struct {
	groupsFile  string
	proxyFile   string
	resultsDir  string
	logFile     string
	workers     int
	maxAttempts int
	retryScope  string
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code. Errors are
// printed to stderr; argument and flag errors also print the usage.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pandavote <final-decision>",
		Short: "pandavote casts the five group votes on the Pandas Election site.",
		Long: "pandavote casts the five group votes on the Pandas Election site.\n" +
			"The final decision (0 or 1) is the vote of the last group.",
		Args:          cobra.MatchAll(cobra.ExactArgs(1), finalDecisionArg),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			// Past this point failures are not usage errors.
			cmd.SilenceUsage = true
			return runVote(cmd.Context(), opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.groupsFile, "groups", "", "JSON5 file overriding the voting groups")
	flags.StringVar(&opts.proxyFile, "proxies", "", "proxy list file, one proxy per line")
	flags.StringVar(&opts.resultsDir, "results-dir", "results", "directory for election result files")
	flags.StringVar(&opts.logFile, "log-file", "pandavote.log", "append-mode log file")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent transactions (default one per group)")
	flags.IntVar(&opts.maxAttempts, "max-attempts", defaultMaxAttempts, "transaction attempts per group (at least 1)")
	flags.StringVar(&opts.retryScope, "retry-scope", RetrySubmitOnly.String(), "transport failures that replay a transaction: submit or all")

	return cmd
}

func finalDecisionArg(cmd *cobra.Command, args []string) error {
	if err := ValidateVote(args[0]); err != nil {
		return fmt.Errorf("final decision: %w", err)
	}
	return nil
}

func (o *options) validate() error {
	if o.maxAttempts < 1 {
		return fmt.Errorf("--max-attempts must be at least 1, got %d", o.maxAttempts)
	}
	if o.workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d", o.workers)
	}
	if _, err := ParseRetryScope(o.retryScope); err != nil {
		return err
	}
	return nil
}

func setupLogging(filename string) (*os.File, error) {
	logFile, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	engineLog = log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags)
	return logFile, nil
}

func runVote(ctx context.Context, opts *options, finalDecision string) error {
	logFile, err := setupLogging(opts.logFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	groups, err := LoadGroups(opts.groupsFile, finalDecision)
	if err != nil {
		engineLog.Printf("Failed to load groups: %v", err)
		return err
	}

	voter, err := buildVoteClient(opts, &moduleLogger{logger: engineLog})
	if err != nil {
		engineLog.Printf("%v", err)
		return err
	}

	workers := opts.workers
	if workers <= 0 {
		workers = len(groups)
	}

	scheduler := NewScheduler(workers, voter, workerStaggerDelay, &moduleLogger{logger: engineLog})
	return run(ctx, scheduler, groups)
}

func buildVoteClient(opts *options, logger Logger) (*VoteClient, error) {
	scope, err := ParseRetryScope(opts.retryScope)
	if err != nil {
		return nil, err
	}

	sink, err := NewFileResultSink(opts.resultsDir)
	if err != nil {
		return nil, err
	}

	site := NewSiteConfig(GetBaseURL(), GetTrialKey())
	engineLog.Printf("Target: %s", site.BaseURL)

	client := NewVoteClient(site, sink, logger)

	platforms := NewProfileSelector()
	engineLog.Printf("Rotating %d platform profiles", platforms.Count())
	client.SetProfileSelector(platforms)

	policy := DefaultRetryPolicy()
	policy.Scope = scope
	policy.MaxAttempts = opts.maxAttempts
	client.SetRetryPolicy(policy)

	if opts.proxyFile != "" {
		proxyManager, err := NewProxyManager(opts.proxyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load proxies: %w", err)
		}
		engineLog.Printf("Loaded %d proxies", proxyManager.Count())
		client.SetProxyManager(proxyManager)
	}

	return client, nil
}

var errVotesFailed = errors.New("one or more votes failed")

func run(ctx context.Context, scheduler *Scheduler, groups []VotingGroup) error {
	engineLog.Printf("Voting for %d groups with %d workers...", len(groups), scheduler.WorkerCount())

	scheduler.Start(ctx)

	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for _, group := range groups {
			if !scheduler.Submit(ctx, group) {
				return
			}
		}
	}()

	var accepted, failed int
collect:
	for range groups {
		select {
		case <-ctx.Done():
			engineLog.Printf("Interrupted, abandoning remaining votes")
			scheduler.Stop()
			failed = len(groups) - accepted
			break collect
		case result := <-scheduler.Results():
			if result.Error != nil {
				failed++
				kind := "extraction"
				if IsTransportError(result.Error) {
					kind = "transport"
				}
				engineLog.Printf("FAILED %s at %s stage (%s): %v", result.Group.Name, FailedStage(result.Error), kind, result.Error)
				continue
			}

			accepted++
			switch result.Result.Outcome {
			case OutcomeElectionClosed:
				engineLog.Printf("ELECTION CLOSED %s (attempts: %d), result saved to %s", result.Group.Name, result.Result.Attempts, result.Result.ArtifactPath)
			default:
				engineLog.Printf("ACCEPTED %s (attempts: %d)", result.Group.Name, result.Result.Attempts)
			}
		}
	}

	<-submitted
	scheduler.Close()

	if failed > 0 {
		engineLog.Printf("=== Done: %d succeeded, %d failed ===", accepted, failed)
		return errVotesFailed
	}

	engineLog.Printf("=== Done: %d votes cast ===", accepted)
	return nil
}
