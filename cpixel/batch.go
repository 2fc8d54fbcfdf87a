package cpixel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

/*
ConvertMany converts a batch of images, all with InputImageDimensions, using up to workers goroutines (workers <= 0 means one per image). Results are returned in the same order as images.

The first failing image cancels the rest and its error is returned. Cancelling ctx stops images that have not started yet.
*/
func (c Converter[T]) ConvertMany(ctx context.Context, images []Bitmap[T], workers int) ([]Bitmap[Cpixel], error) {
	out := make([]Bitmap[Cpixel], len(images))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, img := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			grid, err := c.ConvertOne(img)
			if err != nil {
				return err
			}

			out[i] = grid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
