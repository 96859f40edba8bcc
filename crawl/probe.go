package crawl

import (
	"context"

	"github.com/lexcrawl/lexcrawl"
)

// DefaultProbeSample is the default number of single-character prefixes
// queried when measuring the per-query result cap.
const DefaultProbeSample = 8

// ProbeCap measures the endpoint's per-query result cap before the main
// crawl begins. The cap is not documented anywhere, so it is observed
// empirically: a sample of single-character prefixes is queried and the
// maximum result length seen is taken as the cap.
//
// The bool result is false when no sampled prefix returned any results,
// in which case the fallback value is returned instead. Per-prefix
// fetch failures are tolerated and treated as empty observations;
// context cancellation aborts the probe.
func ProbeCap(ctx context.Context, client lexcrawl.Client, alphabet string, sample, fallback int) (int, bool, error) {
	seeds := Seeds(alphabet)
	if sample <= 0 || sample > len(seeds) {
		sample = len(seeds)
	}

	var maxSeen int
	for _, prefix := range seeds[:sample] {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		terms, err := client.Complete(ctx, prefix)
		if err != nil {
			continue
		}
		if len(terms) > maxSeen {
			maxSeen = len(terms)
		}
	}

	if maxSeen == 0 {
		return fallback, false, nil
	}
	return maxSeen, true, nil
}
