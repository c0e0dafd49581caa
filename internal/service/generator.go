// Package service contains the content generation pipeline and the event
// publisher.  Generation is best-effort by design: when the upstream
// provider is unreachable, slow, or returns garbage, the service falls back
// to locally fabricated demo content instead of failing the request.
package service

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velora/content-studio/internal/config"
)

// GenerateRequest is the dashboard's generation payload.
type GenerateRequest struct {
	Topic            string         `json:"topic"`
	Tone             string         `json:"tone"`
	ContentType      string         `json:"content_type"`
	Keywords         []string       `json:"keywords"`
	AdditionalParams map[string]any `json:"additional_params"`
}

// GenerateResult is the produced content.  Demo marks content fabricated by
// the local fallback rather than the upstream provider.
type GenerateResult struct {
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Demo    bool   `json:"demo,omitempty"`
}

// Generator calls the configured upstream provider with a bounded timeout
// and caches results in Redis when a client is available.  A nil cache
// client simply disables caching.
type Generator struct {
	upstream string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewGenerator(cfg config.Config, cache *redis.Client) *Generator {
	return &Generator{
		upstream: cfg.GeneratorURL,
		client:   &http.Client{Timeout: cfg.GeneratorTimeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
	}
}

// Generate produces content for the request.  It never returns an error;
// every upstream failure degrades to demo content.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) GenerateResult {
	key := cacheKey(req)
	if g.cache != nil && g.cacheTTL > 0 {
		if data, err := g.cache.Get(ctx, key).Bytes(); err == nil {
			var res GenerateResult
			if json.Unmarshal(data, &res) == nil {
				return res
			}
		}
	}

	res, err := g.callUpstream(ctx, req)
	if err != nil {
		log.Printf("generator: upstream unavailable, serving demo content: %v", err)
		res = demoResult(req)
	}

	if g.cache != nil && g.cacheTTL > 0 {
		if data, err := json.Marshal(res); err == nil {
			if err := g.cache.Set(ctx, key, data, g.cacheTTL).Err(); err != nil {
				log.Printf("generator: cache write failed: %v", err)
			}
		}
	}
	return res
}

var errNoUpstream = errors.New("no upstream configured")

func (g *Generator) callUpstream(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if g.upstream == "" {
		return GenerateResult{}, errNoUpstream
	}
	body, err := json.Marshal(req)
	if err != nil {
		return GenerateResult{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.upstream, bytes.NewReader(body))
	if err != nil {
		return GenerateResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return GenerateResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return GenerateResult{}, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var out struct {
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return GenerateResult{}, err
	}
	if strings.TrimSpace(out.Content) == "" {
		return GenerateResult{}, errors.New("upstream returned empty content")
	}
	return GenerateResult{Content: out.Content, Image: out.Image}, nil
}

// cacheKey hashes the fields that determine the output, so identical
// requests share a cache entry regardless of additional_params noise.
func cacheKey(req GenerateRequest) string {
	tail := strings.Join([]string{
		req.Topic,
		req.Tone,
		req.ContentType,
		strings.Join(req.Keywords, ","),
	}, "|")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("gen:%x", sum[:])
}

func demoResult(req GenerateRequest) GenerateResult {
	res := GenerateResult{Content: demoContent(req), Demo: true}
	wantImage := true
	if v, ok := req.AdditionalParams["generate_image"].(bool); ok {
		wantImage = v
	}
	if wantImage {
		res.Image = "https://source.unsplash.com/800x400/?" + url.QueryEscape(req.Topic)
		res.Content += fmt.Sprintf("\n\n![Generated Image for %s](%s)", req.Topic, res.Image)
	}
	return res
}

// demoContent fabricates placeholder markdown per content type.  The copy is
// intentionally generic; it exists so the dashboard has something to render
// when no provider is configured.
func demoContent(req GenerateRequest) string {
	today := time.Now().Format("January 2, 2006")
	topic := strings.TrimSpace(req.Topic)
	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}
	keywordText := "this topic"
	if len(req.Keywords) > 0 {
		kw := req.Keywords
		if len(kw) > 3 {
			kw = kw[:3]
		}
		keywordText = strings.Join(kw, ", ")
	}

	switch req.ContentType {
	case "article":
		return fmt.Sprintf(`# Comprehensive Analysis: %s

*%s | %s analysis*

## Executive Summary

This %s article examines %s in detail, with special emphasis on %s.

## Key Findings

1. **Market Impact** — interest in %s keeps growing.
2. **Technical Considerations** — implementation requires careful planning.
3. **Future Outlook** — new applications are being discovered regularly.

*This is sample content generated in demo mode.*`,
			topic, today, tone, tone, topic, keywordText, topic)
	case "social":
		return fmt.Sprintf(`🚀 Exploring %s today!

Three quick takeaways on %s:
✅ It matters more than ever
✅ Getting started is easier than you think
✅ %s is where the momentum is

#%s

*This is sample content generated in demo mode.*`,
			topic, keywordText, topic, strings.ReplaceAll(topic, " ", ""))
	default: // blog
		return fmt.Sprintf(`# %s: A %s Perspective

*Published on %s*

## Introduction

Welcome to this %s blog post about %s. In this article, we'll explore various
aspects of %s and provide useful insights about %s.

## Main Points

1. **Understanding %s** — key concepts, background, and current trends.
2. **Practical Applications** — how %s is used in real-world scenarios.
3. **Benefits and Advantages** — why %s matters in today's context.

## Conclusion

By focusing on %s, you can leverage these concepts for better outcomes.

*This is sample content generated in demo mode.*`,
			topic, tone, today, tone, topic, topic, keywordText,
			topic, topic, topic, keywordText)
	}
}
