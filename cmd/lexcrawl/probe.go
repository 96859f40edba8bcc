package main

import (
	"fmt"

	"github.com/lexcrawl/lexcrawl/crawl"
	lexhttp "github.com/lexcrawl/lexcrawl/http"
)

// Run executes the probe command: measure the per-query result cap and
// print it.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	cfg.Endpoint = c.Endpoint
	if c.Alphabet != "" {
		cfg.Alphabet = c.Alphabet
	}
	if c.QueryParam != "" {
		cfg.QueryParam = c.QueryParam
	}
	if c.ProbeSample > 0 {
		cfg.ProbeSample = c.ProbeSample
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := lexhttp.NewClient(cfg.Endpoint,
		lexhttp.WithTimeout(cfg.Timeout),
		lexhttp.WithQueryParam(cfg.QueryParam),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	measured, observed, err := crawl.ProbeCap(deps.Ctx, client, cfg.Alphabet, cfg.ProbeSample, 0)
	if err != nil {
		return err
	}
	if !observed {
		fmt.Fprintln(deps.Stdout, "no results observed; the cap could not be measured")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "observed per-query result cap: %d\n", measured)
	return nil
}
