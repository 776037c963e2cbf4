package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitegen-ai/sitegen/internal/generator"
	"github.com/sitegen-ai/sitegen/internal/llm"
	"github.com/sitegen-ai/sitegen/internal/progress"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description...]",
	Short: "Generate a website from a description and write it to a file",
	Long: `Generates a complete single-file HTML website from the given description
and writes it to the configured output file. The description can be passed
as arguments or read from a file with --prompt-file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file (overrides config)")
	generateCmd.Flags().String("prompt-file", "", "read the description from a file instead of arguments")
	generateCmd.Flags().String("system-prompt-file", "", "override the default system prompt from a file")
	generateCmd.Flags().Duration("timeout", 3*time.Minute, "maximum time to wait for the model")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	if promptFile, _ := cmd.Flags().GetString("prompt-file"); promptFile != "" {
		data, err := os.ReadFile(promptFile)
		if err != nil {
			return fmt.Errorf("reading prompt file: %w", err)
		}
		prompt = string(data)
	}
	if err := generator.ValidatePrompt(prompt); err != nil {
		return err
	}

	systemPrompt := ""
	if spFile, _ := cmd.Flags().GetString("system-prompt-file"); spFile != "" {
		data, err := os.ReadFile(spFile)
		if err != nil {
			return fmt.Errorf("reading system prompt file: %w", err)
		}
		systemPrompt = string(data)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.OutputFile
	}

	svc, err := createServiceFromConfig(cfg)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reporter := progress.NewReporter()
	reporter.Start(fmt.Sprintf("Generating website with %s", cfg.Model))

	result, err := svc.Generate(ctx, prompt, systemPrompt)
	if err != nil {
		reporter.Finish("Generation failed")
		if errors.Is(err, generator.ErrInvalidDocument) {
			return fmt.Errorf("%w\nTry rephrasing the description or raising max_tokens", err)
		}
		return fmt.Errorf("generating website: %w", err)
	}

	if err := os.WriteFile(output, []byte(result.Code), 0644); err != nil {
		reporter.Finish("Generation failed")
		return fmt.Errorf("writing output file: %w", err)
	}

	reporter.Finish(fmt.Sprintf("Website written to %s", output))

	if verbose {
		cost := llm.EstimateCost(result.Model, result.InputTokens, result.OutputTokens)
		fmt.Fprintf(os.Stderr, "  Model: %s\n", result.Model)
		fmt.Fprintf(os.Stderr, "  Tokens: %d in / %d out\n", result.InputTokens, result.OutputTokens)
		fmt.Fprintf(os.Stderr, "  Estimated cost: $%.4f\n", cost)
		fmt.Fprintf(os.Stderr, "  Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
	}

	return nil
}
