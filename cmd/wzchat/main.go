// Wazobia terminal chat. Runs the full agent pipeline in-process: no server,
// no auth, history lives for the session only.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
	"github.com/umaryunusa/wazobia/internal/domain/knowledge"
	"github.com/umaryunusa/wazobia/internal/domain/language"
	"github.com/umaryunusa/wazobia/internal/infra/config"
	"github.com/umaryunusa/wazobia/internal/infra/llm"
)

const divider = "============================================================"

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

func run(in io.Reader, out io.Writer) int {
	cfg := config.Load()

	base, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		fmt.Fprintf(out, "warning: corpus not loaded: %v\n", err) //nolint:errcheck
		base = knowledge.NewBase(nil)
	}

	var provider llm.LLMProvider
	if cfg.APIKey() != "" || cfg.LLMProvider == "local" {
		provider, err = llm.NewProvider(cfg.LLMProvider, cfg.LLMBaseURL, cfg.APIKey(), cfg.DefaultModel)
		if err != nil {
			fmt.Fprintf(out, "warning: LLM provider %s unavailable: %v\n", cfg.LLMProvider, err) //nolint:errcheck
		}
	}

	ag := agent.New(provider, base, cfg.Temperature, cfg.MaxTokens)

	printBanner(out)

	detectMode := false
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ") //nolint:errcheck
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nKa sai anjima! (Goodbye!)") //nolint:errcheck
			return 0
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			switch strings.ToLower(input) {
			case "/quit", "/exit":
				fmt.Fprintln(out, "\nKa sai anjima! (Goodbye!)") //nolint:errcheck
				return 0
			case "/help":
				printHelp(out)
			case "/stats":
				printStats(out, ag)
			case "/clear":
				ag.ClearHistory()
				fmt.Fprintln(out, "Conversation history cleared") //nolint:errcheck
			case "/detect":
				detectMode = true
				fmt.Fprintln(out, "Language detection mode ON (next message only)") //nolint:errcheck
			default:
				fmt.Fprintf(out, "Unknown command: %s\nType /help for available commands\n", input) //nolint:errcheck
			}
			continue
		}

		if detectMode {
			printDetection(out, input)
			detectMode = false
			continue
		}

		reply := ag.ProcessMessage(context.Background(), input, nil)
		fmt.Fprintf(out, "\nAgent [%s | %s]:\n%s\n\n", language.Name(reply.Language), reply.Intent, reply.Response) //nolint:errcheck
	}
}

func printBanner(out io.Writer) {
	fmt.Fprintln(out, "\n"+divider)                                      //nolint:errcheck
	fmt.Fprintln(out, "WAZOBIA MULTILINGUAL AI AGENT")                   //nolint:errcheck
	fmt.Fprintln(out, divider)                                           //nolint:errcheck
	fmt.Fprintln(out, "Languages: Hausa | Nigerian Pidgin | Yoruba | English") //nolint:errcheck
	fmt.Fprintln(out, divider)                                           //nolint:errcheck
	fmt.Fprintln(out, "\nCommands:")                                     //nolint:errcheck
	fmt.Fprintln(out, "  /help     - Show help")                         //nolint:errcheck
	fmt.Fprintln(out, "  /stats    - Show statistics")                   //nolint:errcheck
	fmt.Fprintln(out, "  /clear    - Clear conversation history")        //nolint:errcheck
	fmt.Fprintln(out, "  /detect   - Detect language of next message")   //nolint:errcheck
	fmt.Fprintln(out, "  /quit     - Exit chat")                         //nolint:errcheck
	fmt.Fprintln(out, "\nType your message and press Enter to chat!")    //nolint:errcheck
	fmt.Fprint(out, divider+"\n\n")                                      //nolint:errcheck
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "\nHELP")                                                  //nolint:errcheck
	fmt.Fprintln(out, divider)                                                   //nolint:errcheck
	fmt.Fprintln(out, "How to use:")                                             //nolint:errcheck
	fmt.Fprintln(out, "  - Just type naturally in any supported language")       //nolint:errcheck
	fmt.Fprintln(out, "  - The agent will detect your language automatically")   //nolint:errcheck
	fmt.Fprintln(out, "  - Try greetings: 'Sannu', 'How far', 'Bawo ni', 'Hello'") //nolint:errcheck
	fmt.Fprintln(out, "  - Ask for translations: 'Translate X to Y'")            //nolint:errcheck
	fmt.Fprintln(out, "  - Ask questions: 'Tell me about Nigeria'")              //nolint:errcheck
	fmt.Fprintln(out, "  - Generate content: 'Write a story in Pidgin'")         //nolint:errcheck
	fmt.Fprint(out, divider+"\n\n")                                              //nolint:errcheck
}

func printStats(out io.Writer, ag *agent.Agent) {
	stats := ag.Statistics()
	fmt.Fprintln(out, "\nSTATISTICS")                                                  //nolint:errcheck
	fmt.Fprintln(out, divider)                                                         //nolint:errcheck
	fmt.Fprintf(out, "Total conversations: %v\n", stats["total_conversations"])        //nolint:errcheck
	if langs, ok := stats["languages_supported"].([]string); ok {
		fmt.Fprintf(out, "Languages supported: %s\n", strings.Join(langs, ", ")) //nolint:errcheck
	}
	if sizes, ok := stats["knowledge_base_size"].(map[string]int); ok {
		fmt.Fprintln(out, "\nKnowledge Base Size:") //nolint:errcheck
		partitions := make([]string, 0, len(sizes))
		for p := range sizes {
			partitions = append(partitions, p)
		}
		sort.Strings(partitions)
		for _, p := range partitions {
			fmt.Fprintf(out, "  %s: %d documents\n", partitionName(p), sizes[p]) //nolint:errcheck
		}
	}
	fmt.Fprint(out, divider+"\n\n") //nolint:errcheck
}

func printDetection(out io.Writer, text string) {
	result := language.Detect(text)
	fmt.Fprintln(out, "\nLANGUAGE DETECTION")                             //nolint:errcheck
	fmt.Fprintln(out, divider)                                            //nolint:errcheck
	fmt.Fprintf(out, "Text: %s\n", text)                                  //nolint:errcheck
	fmt.Fprintf(out, "Detected: %s\n", language.Name(result.Language))    //nolint:errcheck
	fmt.Fprintf(out, "Confidence: %.0f%%\n", result.Confidence*100)       //nolint:errcheck
	fmt.Fprintf(out, "All scores: %v\n", result.Scores)                   //nolint:errcheck
	fmt.Fprintf(out, "Mixed language: %v\n", result.IsMixed)              //nolint:errcheck
	fmt.Fprint(out, divider+"\n\n")                                       //nolint:errcheck
}

func partitionName(code string) string {
	switch code {
	case "ha":
		return "Hausa"
	case "pcm":
		return "Pidgin"
	case "yo":
		return "Yoruba"
	case "all":
		return "Combined"
	default:
		return code
	}
}
