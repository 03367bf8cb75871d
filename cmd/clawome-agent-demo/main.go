// Command clawome-agent-demo is a thin, out-of-core demonstration of the
// "language-model agent" collaborator spec.md §1 names as the core's sole
// consumer: it sends clawome.Extract's rendered tree to a Gemini model,
// asks for the hid of the element to click, and resolves that hid back to
// a selector via clawome.Resolve. Nothing here is part of the compression
// pipeline; it only exercises Extract/Resolve's public surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/CodingLucasLi/Clawome/clawome"
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/nodemap"
	"github.com/CodingLucasLi/Clawome/render"
)

func main() {
	_ = godotenv.Load(".env")

	url := flag.String("url", "https://www.google.com", "page to extract")
	goal := flag.String("goal", `find the element that submits the search form`, "what to ask the model to locate")
	flag.Parse()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Fatalf("create genai client: %v", err)
	}

	u := launcher.New().Headless(true).MustLaunch()
	browser := rod.New().ControlURL(u).MustConnect()
	defer browser.MustClose()

	page := browser.MustPage(*url)
	defer page.MustClose()

	var store nodemap.Store
	result, err := clawome.Extract(page, clawome.Options{
		Cfg:      config.Default(),
		Mode:     render.Full,
		IdleWait: 2 * time.Second,
		Log:      zerolog.Nop(),
		Store:    &store,
	})
	if err != nil {
		log.Fatalf("extract failed: %v", err)
	}

	prompt := fmt.Sprintf(
		"You are given a compressed accessibility tree of a web page. Each line "+
			"starts with a hierarchical id in brackets, e.g. [2.1]. Task: %s\n\n"+
			"Reply with exactly one line: the hid of the element to act on, nothing else.\n\n%s",
		*goal, result.Rendered,
	)

	resp, err := client.Models.GenerateContent(ctx, "gemini-2.0-flash", genai.Text(prompt), nil)
	if err != nil {
		log.Fatalf("generate content: %v", err)
	}

	hid := strings.TrimSpace(resp.Text())
	entry, err := clawome.Resolve(store.Current(), hid)
	if err != nil {
		log.Fatalf("resolve %q: %v", hid, err)
	}

	fmt.Printf("model chose hid %q -> selector %q (xpath %q)\n", hid, entry.Selector, entry.XPath)
}
