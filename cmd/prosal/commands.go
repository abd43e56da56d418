package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/cache"
	"git.home.luguber.info/inful/prosal/internal/config"
	"git.home.luguber.info/inful/prosal/internal/detector"
	"git.home.luguber.info/inful/prosal/internal/engine"
	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/mdmask"
	"git.home.luguber.info/inful/prosal/internal/obs"
	"git.home.luguber.info/inful/prosal/internal/server"
)

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", apperr.Wrap(err, apperr.CategoryValidation, apperr.SeverityFatal, "read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperr.Wrap(err, apperr.CategoryValidation, apperr.SeverityFatal, "read input file")
	}
	return string(data), nil
}

func runHumanize(cfg *config.Config) error {
	text, err := readInput(CLI.Humanize.Input)
	if err != nil {
		return err
	}
	if text == "" {
		return apperr.Validation("input is empty")
	}

	req := engine.Request{
		Text:         text,
		Lang:         CLI.Humanize.Lang,
		Profile:      CLI.Humanize.Profile,
		Intensity:    CLI.Humanize.Intensity,
		Seed:         CLI.Humanize.Seed,
		BrandTerms:   CLI.Humanize.Brand,
		KeepKeywords: CLI.Humanize.Keep,
	}
	if ratio := CLI.Humanize.MaxChangeRatio; ratio >= 0 {
		req.MaxChangeRatio = &ratio
	} else if cfg.Defaults.MaxChangeRatio > 0 {
		ratio := cfg.Defaults.MaxChangeRatio
		req.MaxChangeRatio = &ratio
	}

	var replacements []mdmask.Replacement
	if CLI.Humanize.Markdown || cfg.Defaults.Markdown {
		req.Text, replacements = mdmask.Mask(req.Text)
		req.KeepKeywords = append(req.KeepKeywords, mdmask.Tokens(replacements)...)
	}

	result, err := engine.New().Humanize(req)
	if err != nil {
		return err
	}
	if len(replacements) > 0 {
		result.Text = mdmask.Unmask(result.Text, replacements)
	}

	if CLI.Humanize.JSON {
		return writeJSONOut(result)
	}
	fmt.Println(result.Text)
	return nil
}

func runDetect(cfg *config.Config) error {
	text, err := readInput(CLI.Detect.Input)
	if err != nil {
		return err
	}

	result, err := detector.New().Detect(text, CLI.Detect.Lang)
	if err != nil {
		return err
	}
	return writeJSONOut(result)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	registry := prom.NewRegistry()
	recorder := obs.NewPrometheusRecorder(registry)

	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		var store cache.Store
		if cfg.Cache.Path != "" {
			sqlStore, err := cache.NewSQLiteStore(cfg.Cache.Path)
			if err != nil {
				return apperr.Wrap(err, apperr.CategoryCache, apperr.SeverityFatal, "open result cache")
			}
			store = sqlStore
		} else {
			store = cache.NewMemoryStore()
		}
		resultCache = cache.New(store, recorder)
		defer resultCache.Close()
	}

	addr := cfg.Server.Addr
	if CLI.Serve.Addr != "" {
		addr = CLI.Serve.Addr
	}

	srv := server.New(server.Options{
		Addr:     addr,
		Engine:   engine.New(engine.WithRecorder(recorder)),
		Scorer:   detector.New(detector.WithRecorder(recorder)),
		Cache:    resultCache,
		Registry: registry,
	})
	return srv.Run(ctx)
}

func runPacks() error {
	for _, lang := range langpack.Languages() {
		pack, err := langpack.Get(lang)
		if err != nil {
			return err
		}
		fmt.Printf("%s\tconnectors=%d synonym_groups=%d markers=%d\n",
			lang, len(pack.Connectors), len(pack.SynonymGroups), len(pack.DiscourseMarkers))
	}
	return nil
}

func writeJSONOut(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return apperr.Wrap(err, apperr.CategoryInternal, apperr.SeverityFatal, "encode output")
	}
	return nil
}
