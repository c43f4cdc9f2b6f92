package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-assistant/internal/bootstrap"
	"resume-assistant/internal/chat"
	"resume-assistant/internal/extract"
	"resume-assistant/internal/scoring"
	"resume-assistant/internal/shared/config"
)

type output struct {
	File       string         `json:"file"`
	TextBytes  int            `json:"text_bytes"`
	Heuristic  int            `json:"heuristic_score"`
	Generative scoring.Result `json:"generative"`
	Question   string         `json:"question,omitempty"`
	Reply      string         `json:"reply,omitempty"`
	Model      string         `json:"model"`
}

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume PDF")
	question := flag.String("ask", "", "Question to ask about the resume (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini or openai)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(*provider))
	cfg.LLMModel = strings.TrimSpace(*model)

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	ctx := context.Background()
	text, err := extract.ExtractTextFromBytes(ctx, resumeBytes)
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}

	capability := bootstrap.ResolveModel(ctx, cfg)
	scorer := scoring.NewScorer(capability)

	out := output{
		File:      *resumePath,
		TextBytes: len(text),
		Heuristic: scoring.Heuristic(text),
		Model:     capability.State.String(),
	}
	out.Generative, err = scorer.Generative(ctx, text)
	if err != nil {
		exitErr(fmt.Sprintf("generative score: %v", err))
	}

	if q := strings.TrimSpace(*question); q != "" {
		out.Question = q
		reply, err := chat.NewService(capability).Ask(ctx, text, q)
		if err != nil {
			exitErr(fmt.Sprintf("chat: %v", err))
		}
		out.Reply = reply
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		exitErr(fmt.Sprintf("encode output: %v", err))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
