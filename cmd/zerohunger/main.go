package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"zerohunger/internal/config"
	"zerohunger/internal/domain"
	"zerohunger/internal/knowledge"
	"zerohunger/internal/logging"
	"zerohunger/internal/service"
	"zerohunger/internal/transcript"
	"zerohunger/internal/tui"
	"zerohunger/internal/vectorizer/tfidf"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, ask string
	var explain bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/zerohunger/config.yaml if not provided)")
	flag.StringVar(&ask, "ask", "", "Answer a single question and exit")
	flag.BoolVar(&explain, "explain", false, "With --ask, also print the reply source and score")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The TUI owns stdout, so interactive logs only go to a file when configured.
	var fallback io.Writer = io.Discard
	if ask != "" {
		fallback = os.Stderr
	}
	logOut, closeLog, err := logging.Open(cfg.Log.Path, fallback)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer closeLog()
	logger := logging.New("zerohunger", cfg.Log.Level, cfg.Log.Format, logOut)

	// Assemble components
	var vec domain.Vectorizer
	switch cfg.Vectorizer.Type {
	case "tfidf", "":
		var opts []tfidf.Option
		if cfg.Vectorizer.Stopwords {
			opts = append(opts, tfidf.WithStopwords())
		}
		vec = tfidf.New(opts...)
	default:
		log.Fatalf("unknown vectorizer: %s", cfg.Vectorizer.Type)
	}

	pairs := knowledge.Default()
	lexicon := knowledge.DefaultLexicon()
	if cfg.Knowledge.Path != "" {
		pairs, lexicon, err = knowledge.LoadFile(cfg.Knowledge.Path)
		if err != nil {
			logger.Error("knowledge file rejected", "path", cfg.Knowledge.Path, "error", err)
			log.Fatalf("failed to load knowledge file: %v", err)
		}
	}

	assistant, err := service.Initialize(service.Options{
		Pairs:      pairs,
		Lexicon:    lexicon,
		Vectorizer: vec,
		Threshold:  cfg.Matcher.Threshold,
		Fallback:   cfg.Matcher.Fallback,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("initialization failed", "error", err)
		log.Fatalf("initialization failed: %v", err)
	}

	if ask != "" {
		reply := assistant.Explain(ask)
		fmt.Println(reply.Text)
		if explain {
			fmt.Fprintf(os.Stderr, "source=%s score=%.4f question=%q\n", reply.Source, reply.Score, reply.Question)
		}
		return
	}

	tr := transcript.New()
	logger.Info("session started", "session", tr.SessionID())
	m := tui.New(assistant, tr, time.Duration(cfg.Chat.ThinkingDelayMillis)*time.Millisecond)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
	logger.Info("session ended", "session", tr.SessionID(), "messages", tr.Len())
}
