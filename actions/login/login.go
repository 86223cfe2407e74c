package login

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rezapahlevi/go-mlbb-cli/internal/config"
	"github.com/rezapahlevi/go-mlbb-cli/internal/logger"
	"github.com/rezapahlevi/go-mlbb-cli/internal/platform/mlbb"
)

// Command is the CLI command for the MLBB account login flow.
var Command = &cli.Command{
	Name:  "login",
	Usage: "Log in to your Mobile Legends account and show its profile",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "role-id",
			Aliases: []string{"r"},
			Usage:   "numeric role ID of the account",
		},
		&cli.StringFlag{
			Name:    "zone-id",
			Aliases: []string{"z"},
			Usage:   "numeric zone (server) ID of the account",
		},
		&cli.StringFlag{
			Name:  "code",
			Usage: "verification code (skips requesting a new one by email)",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "render the profile as a framed table",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug logging",
		},
	},
	Action: loginAction,
}

// flowInput carries the values resolved from flags into the flow; anything
// left empty is prompted for interactively.
type flowInput struct {
	roleID      string
	zoneID      string
	code        string
	pretty      bool
	interactive bool
}

func loginAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if cmd.Bool("debug") {
		level = "debug"
	}
	log := logger.New(cfg.LogFile, level)

	client := mlbb.NewClient(mlbb.Config{
		SendVcURL:   cfg.SendVcURL,
		LoginURL:    cfg.LoginURL,
		BaseInfoURL: cfg.BaseInfoURL,
		Timeout:     cfg.HTTPTimeout,
	}, log)

	in := flowInput{
		roleID:      cmd.String("role-id"),
		zoneID:      cmd.String("zone-id"),
		code:        cmd.String("code"),
		pretty:      cmd.Bool("pretty"),
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}

	return runFlow(ctx, client, in, bufio.NewReader(os.Stdin), os.Stdout, os.Stderr)
}

// runFlow executes the strictly sequential login flow: request a
// verification code, log in with it, fetch the profile, print it. Status
// messages go to stderr so stdout carries only the profile fields.
func runFlow(ctx context.Context, client *mlbb.Client, in flowInput, stdin *bufio.Reader, stdout, stderr io.Writer) error {
	roleID, err := resolveID(stdin, stderr, in.roleID, "Enter your roleId: ")
	if err != nil {
		return err
	}
	zoneID, err := resolveID(stdin, stderr, in.zoneID, "Enter your zoneId: ")
	if err != nil {
		return err
	}

	code := in.code
	if code == "" {
		spin := newSpinner(in.interactive, stderr, "Sending verification code")
		err = client.SendVerificationCode(ctx, roleID, zoneID)
		spin.stop()
		if err != nil {
			return fmt.Errorf("failed to send verification code: %w", err)
		}
		fmt.Fprintln(stderr, "✓ Verification code sent, check the email bound to this account")

		code, err = promptNonEmpty(stdin, stderr, "Enter the verification code from your email: ")
		if err != nil {
			return fmt.Errorf("failed to read verification code: %w", err)
		}
	}

	spin := newSpinner(in.interactive, stderr, "Logging in")
	session, err := client.Login(ctx, roleID, zoneID, code, randomReferer())
	spin.stop()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Fprintln(stderr, "✓ Logged in")

	profile, err := client.FetchProfile(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	if in.pretty {
		fmt.Fprintln(stdout, renderProfile(profile))
	} else {
		printProfile(stdout, profile)
	}

	return nil
}

// printProfile writes the profile fields one per line, in the fixed order
// the tool documents: Player Name, Level, Rank Level, Country, Account ID,
// Server ID.
func printProfile(w io.Writer, p *mlbb.Profile) {
	fmt.Fprintf(w, "Player Name: %s\n", p.Name)
	fmt.Fprintf(w, "Level: %d\n", p.Level)
	fmt.Fprintf(w, "Rank Level: %s\n", p.RankLevel)
	fmt.Fprintf(w, "Country: %s\n", p.Country)
	fmt.Fprintf(w, "Account ID: %s\n", p.RoleID)
	fmt.Fprintf(w, "Server ID: %s\n", p.ZoneID)
}

// resolveID validates a flag-supplied ID or prompts for one until the input
// is numeric.
func resolveID(stdin *bufio.Reader, out io.Writer, value, prompt string) (string, error) {
	if value != "" {
		if !isDigits(value) {
			return "", fmt.Errorf("invalid ID %q: must be numeric", value)
		}
		return value, nil
	}

	for {
		v, err := promptLine(stdin, out, prompt)
		if err != nil {
			return "", err
		}
		if isDigits(v) {
			return v, nil
		}
		fmt.Fprintln(out, "Input must be a number")
	}
}

// promptNonEmpty prompts until the user enters a non-empty line.
func promptNonEmpty(stdin *bufio.Reader, out io.Writer, prompt string) (string, error) {
	for {
		v, err := promptLine(stdin, out, prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(out, "Input cannot be empty")
	}
}

func promptLine(stdin *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// randomReferer reproduces the numeric pair the web login page attaches to
// each login attempt.
func randomReferer() string {
	return fmt.Sprintf("%d_%d", 2000000+rand.Intn(1000000), 2000000+rand.Intn(1000000))
}
