// Package main provides a command-line interface for the promptgen library.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/teilomillet/promptgen"
	"github.com/teilomillet/promptgen/utils"
)

// cmdFlags holds all command-line flags
type cmdFlags struct {
	apiKey       string
	baseURL      string
	model        string
	maxTokens    int
	temperature  float64
	timeout      time.Duration
	logLevel     string
	vars         string
	templateFile string
	health       bool
	schema       bool
	jsonOutput   bool
}

func parseFlags() *cmdFlags {
	flags := &cmdFlags{}
	flag.StringVar(&flags.apiKey, "api-key", "", "API key for the LLM Farm endpoint")
	flag.StringVar(&flags.baseURL, "base-url", "", "Base URL of the LLM Farm endpoint")
	flag.StringVar(&flags.model, "model", "", "Model name")
	flag.IntVar(&flags.maxTokens, "max-tokens", 0, "Maximum completion tokens")
	flag.Float64Var(&flags.temperature, "temperature", -1, "Sampling temperature")
	flag.DurationVar(&flags.timeout, "timeout", 0, "Request timeout")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (OFF, ERROR, WARN, INFO, DEBUG)")
	flag.StringVar(&flags.vars, "vars", "", "Comma-separated list of variables the template must use")
	flag.StringVar(&flags.templateFile, "test", "", "Test mode: path to a template file; args are NAME=value bindings")
	flag.BoolVar(&flags.health, "health", false, "Check endpoint reachability and exit")
	flag.BoolVar(&flags.schema, "schema", false, "Print the JSON schema of the generation result and exit")
	flag.BoolVar(&flags.jsonOutput, "json", false, "Print the generation result as JSON")
	flag.Parse()
	return flags
}

func configOptions(flags *cmdFlags) []promptgen.ConfigOption {
	var opts []promptgen.ConfigOption
	if flags.apiKey != "" {
		opts = append(opts, promptgen.SetAPIKey(flags.apiKey))
	}
	if flags.baseURL != "" {
		opts = append(opts, promptgen.SetBaseURL(flags.baseURL))
	}
	if flags.model != "" {
		opts = append(opts, promptgen.SetModel(flags.model))
	}
	if flags.maxTokens > 0 {
		opts = append(opts, promptgen.SetMaxTokens(flags.maxTokens))
	}
	if flags.temperature >= 0 {
		opts = append(opts, promptgen.SetTemperature(flags.temperature))
	}
	if flags.timeout > 0 {
		opts = append(opts, promptgen.SetTimeout(flags.timeout))
	}
	if flags.logLevel != "" {
		var level utils.LogLevel
		if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
			log.Fatalf("Invalid log level: %v", err)
		}
		opts = append(opts, promptgen.SetLogLevel(level))
	}
	return opts
}

func parseBindings(args []string) map[string]string {
	bindings := make(map[string]string)
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			log.Fatalf("Invalid binding %q, expected NAME=value", arg)
		}
		bindings[name] = value
	}
	return bindings
}

func printResult(result *promptgen.Result, asJSON bool) {
	if asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println(result.PromptTemplate)
	if len(result.Variables) > 0 {
		fmt.Fprintf(os.Stderr, "\nVariables: %s\n", strings.Join(result.Variables, ", "))
	}
	if len(result.FloatingVariables) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: floating variables detected: %s\n", strings.Join(result.FloatingVariables, ", "))
	}
	if !result.Validation.HasOutputFormat {
		fmt.Fprintln(os.Stderr, "Warning: template has no Output Format section")
	}
}

func main() {
	flags := parseFlags()

	if flags.schema {
		schema, err := promptgen.ResultJSONSchema()
		if err != nil {
			log.Fatalf("Failed to generate schema: %v", err)
		}
		fmt.Println(string(schema))
		return
	}

	gen, client, err := promptgen.New(configOptions(flags)...)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	ctx := context.Background()

	if flags.health {
		if !client.HealthCheck(ctx) {
			log.Fatal("Health check failed")
		}
		fmt.Println("OK")
		return
	}

	if flags.templateFile != "" {
		template, err := os.ReadFile(flags.templateFile)
		if err != nil {
			log.Fatalf("Failed to read template: %v", err)
		}
		output, err := gen.Test(ctx, string(template), parseBindings(flag.Args()))
		if err != nil {
			log.Fatalf("Test failed: %v", err)
		}
		fmt.Println(output)
		return
	}

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if task == "" {
		log.Fatal("Usage: promptgen [flags] <task description>")
	}

	var explicit []string
	if flags.vars != "" {
		for _, name := range strings.Split(flags.vars, ",") {
			if name = strings.TrimSpace(name); name != "" {
				explicit = append(explicit, name)
			}
		}
	}

	result, err := gen.Generate(ctx, task, explicit)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	printResult(result, flags.jsonOutput)
}
