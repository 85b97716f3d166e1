package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/tonecraft/promptforge/internal/config"
	"github.com/tonecraft/promptforge/internal/generate"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "promptforge@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	creativityLevel := flag.Int("creativity", cfg.CreativityLevel, "creativity slider value, 0-100")
	maxMode := flag.Bool("max", cfg.MaxMode, "emit the MAX quoted-field format")
	storyMode := flag.Bool("story", cfg.StoryMode, "render the prompt as narrative prose")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible output, 0 picks one")
	genres := flag.String("genres", "", "comma-separated seed genres")
	mood := flag.String("mood", "", "mood category override (melancholy, energetic, calm, dark, romantic)")
	wordless := flag.Bool("wordless", false, "add a wordless-vocals instrument cue")
	flag.Parse()

	description := strings.Join(flag.Args(), " ")
	if description == "" && !isTerminal(os.Stdin) {
		description = readStdin()
	}

	ctx := context.Background()
	engine := generate.New(ctx, cfg)

	req := &generate.Request{
		Description:    description,
		Creativity:     *creativityLevel,
		SeedGenres:     splitGenres(*genres),
		MoodCategory:   *mood,
		MaxMode:        *maxMode,
		StoryMode:      *storyMode,
		WordlessVocals: *wordless,
		Seed:           *seed,
	}

	result, err := engine.Generate(ctx, req)
	if err != nil {
		sentry.CaptureException(err)
		sentry.Flush(sentryFlushTimeout)
		log.Fatalf("generation failed: %v", err)
	}

	if result.Title != "" {
		fmt.Printf("Title: %s\n\n", result.Title)
	}
	fmt.Println(result.Text)
	if result.StoryModeFallback {
		fmt.Fprintln(os.Stderr, "note: story mode unavailable, structured prompt returned instead")
	}
}

func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func readStdin() string {
	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
