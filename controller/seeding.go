package controller

import (
	"context"
	"fmt"
	"strconv"
)

// seedIfEmpty applies the seeding policy: when the first list of a page load
// comes back empty and the spec carries samples, the samples are created
// strictly in order (each create awaited before the next) and the list is
// fetched again. A non-empty list skips seeding entirely.
//
// A failed sample create aborts the page load with a wrapped error. There is
// no rollback and no retry; already-created samples are picked up untouched on
// the next load.
func (c *Controller[T]) seedIfEmpty(ctx context.Context, items []T) ([]T, error) {
	if len(items) != 0 || len(c.spec.Samples) == 0 {
		return items, nil
	}
	c.logger.PrintInfo("seeding sample records", map[string]string{
		"resource": c.spec.Plural,
		"count":    strconv.Itoa(len(c.spec.Samples)),
	})
	for _, sample := range c.spec.Samples {
		if _, err := c.client.Create(ctx, sample); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", c.spec.Plural, err)
		}
	}
	return c.client.List(ctx)
}
