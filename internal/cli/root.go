// Package cli wires flags, configuration, and interactive prompts into
// a changelog generation run and maps failures to exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/evanhall-dev/shiplog/internal/app"
	"github.com/evanhall-dev/shiplog/internal/changelog"
	"github.com/evanhall-dev/shiplog/internal/config"
	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/githost"
	"github.com/evanhall-dev/shiplog/internal/gitlocal"
	"github.com/evanhall-dev/shiplog/internal/model"
	"github.com/evanhall-dev/shiplog/internal/output"
	"github.com/evanhall-dev/shiplog/internal/progress"
	"github.com/evanhall-dev/shiplog/internal/provider"
	"github.com/evanhall-dev/shiplog/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "shiplog [repository]",
	Short: "Turn commit history into a public-friendly changelog",
	Long: `shiplog fetches a repository's commit history, rewrites the raw
commit messages through a text-generation provider into public-safe
changelog entries, and merges them into CHANGELOG.md grouped by day,
week, or month.

The repository can be given as owner/repo, github.com/owner/repo, or a
full https URL. Omitting it on an interactive terminal starts a guided
prompt; use --local to read commits from a clone on disk instead of the
GitHub API.

Credentials come from the environment (or a .env file):
  GITHUB_TOKEN       required for the GitHub source
  ANTHROPIC_API_KEY  required for --model anthropic (the default)
  OPENAI_API_KEY     required for --model openai`,
	Example: `  shiplog octocat/hello-world
  shiplog octocat/hello-world --group-by week --style corporate
  shiplog octocat/hello-world --num-commits all --after-date 2024-01-01
  shiplog --local . --model openai --summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd, args)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.Flags().StringP("num-commits", "n", "", "number of commits to process, or 'all' (default 100)")
	rootCmd.Flags().StringP("model", "m", "", "generation provider: anthropic or openai")
	rootCmd.Flags().StringP("group-by", "g", "", "period to bucket commits by: "+strings.Join(changelog.ValidGroupModes(), ", "))
	rootCmd.Flags().StringP("style", "s", "", "changelog tone: "+strings.Join(provider.ValidStyles(), ", "))
	rootCmd.Flags().StringP("branch", "b", "", "branch to read (default: main, master, then the repository default)")
	rootCmd.Flags().String("after-date", "", "only include commits on or after this date (YYYY-MM-DD)")
	rootCmd.Flags().StringP("local", "l", "", "read commits from a local clone at this path instead of the API")
	rootCmd.Flags().StringP("output", "o", "", "changelog file to update (default CHANGELOG.md)")
	rootCmd.Flags().Bool("summary", false, "regenerate the top-of-file summary block")
	rootCmd.Flags().Bool("plain", false, "disable colors and spinner animation")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	if cliErr := cerrors.AsCLIError(err); cliErr != nil {
		cerrors.FprintError(os.Stderr, cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCodeFor(err)
}

func runRoot(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		return cerrors.Wrap(err, cerrors.Argument,
			"Check .shiplog/config.yml and SHIPLOG_* environment variables")
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	repoRef := ""
	if len(args) > 0 {
		repoRef = args[0]
	}
	local, _ := cmd.Flags().GetString("local")

	if repoRef == "" && local == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cerrors.MissingRepoArgument()
		}
		prompts := newPrompter(os.Stdin, cmd.OutOrStdout())
		repoRef, err = prompts.fillMissing(cfg)
		if err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return cerrors.Wrap(err, cerrors.Argument)
	}

	afterDate, err := parseAfterDate(cmd)
	if err != nil {
		return err
	}

	prov, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	source, repo, err := buildSource(ctx, cmd.OutOrStdout(), cfg, repoRef, local)
	if err != nil {
		return err
	}

	caps := progress.DetectTerminalCapabilities()
	if plain {
		caps.IsTTY = false
	}

	output.PrintHeader(cmd.OutOrStdout(), repo.FullName)

	pipeline := &app.App{
		Source:   source,
		Provider: prov,
		Out:      cmd.OutOrStdout(),
		Reporter: progress.NewReporter(cmd.OutOrStdout(), caps),
	}

	return pipeline.Run(ctx, app.Options{
		Repo:       repo,
		Branch:     cfg.Branch,
		NumCommits: cfg.NumCommits,
		AfterDate:  afterDate,
		GroupBy:    changelog.GroupMode(cfg.GroupBy),
		Style:      provider.Style(cfg.Style),
		OutputPath: cfg.Output,
		Summary:    cfg.Summary,
	})
}

// applyFlagOverrides overlays explicitly set flags on top of the loaded
// configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Configuration) error {
	flags := cmd.Flags()

	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	if flags.Changed("group-by") {
		cfg.GroupBy, _ = flags.GetString("group-by")
	}
	if flags.Changed("style") {
		cfg.Style, _ = flags.GetString("style")
	}
	if flags.Changed("branch") {
		cfg.Branch, _ = flags.GetString("branch")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("summary") {
		cfg.Summary, _ = flags.GetBool("summary")
	}
	if flags.Changed("num-commits") {
		raw, _ := flags.GetString("num-commits")
		n, err := parseNumCommits(raw)
		if err != nil {
			return err
		}
		cfg.NumCommits = n
	}
	return nil
}

// parseNumCommits accepts a positive count or "all" (meaning no cap).
func parseNumCommits(raw string) (int, error) {
	if strings.EqualFold(raw, "all") {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, cerrors.NewArgumentError(
			fmt.Sprintf("invalid --num-commits value: %s", raw),
			"Pass a positive number, or 'all' for the entire history")
	}
	return n, nil
}

func parseAfterDate(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("after-date")
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, cerrors.InvalidAfterDate(raw)
	}
	return ts.UTC(), nil
}

// buildProvider constructs the selected generation backend, checking
// that its API key is configured.
func buildProvider(cfg *config.Configuration) (provider.Provider, error) {
	switch cfg.Model {
	case "openai":
		if cfg.Credentials.OpenAIKey == "" {
			return nil, cerrors.MissingProviderKey("OpenAI", "OPENAI_API_KEY")
		}
		p, err := provider.NewOpenAI(cfg.Credentials.OpenAIKey)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		if cfg.Credentials.AnthropicKey == "" {
			return nil, cerrors.MissingProviderKey("Anthropic", "ANTHROPIC_API_KEY")
		}
		p, err := provider.NewAnthropic(cfg.Credentials.AnthropicKey)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// buildSource constructs the commit source: a local clone when --local
// is given, the GitHub API otherwise.
func buildSource(ctx context.Context, out io.Writer, cfg *config.Configuration, repoRef, local string) (app.CommitSource, model.Repo, error) {
	if local != "" {
		lr, err := gitlocal.Open(local)
		if err != nil {
			return nil, model.Repo{}, err
		}
		repo, err := lr.Describe(ctx)
		if err != nil {
			return nil, model.Repo{}, err
		}
		output.PrintSuccess(out, fmt.Sprintf("Local repository: %s", repo.FullName))
		return lr, repo, nil
	}

	if cfg.Credentials.GitHubToken == "" {
		return nil, model.Repo{}, cerrors.MissingGitHubToken()
	}

	fullName, err := githost.ParseRepoRef(repoRef)
	if err != nil {
		return nil, model.Repo{}, err
	}

	client := githost.NewClient(cfg.Credentials.GitHubToken)
	repo, err := client.ResolveRepo(ctx, fullName)
	if err != nil {
		return nil, model.Repo{}, err
	}

	output.PrintSuccess(out, fmt.Sprintf("Repository found: %s", repo.FullName))
	desc := repo.Description
	if desc == "" {
		desc = "No description"
	}
	output.PrintInfo(out, fmt.Sprintf("Description: %s", desc))
	return client, repo, nil
}
