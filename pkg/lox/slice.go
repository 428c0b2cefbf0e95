package lox

import "fmt"

// MapErr is lo.Map for iteratees that can fail. The first error stops the
// iteration and is returned with the index of the offending item.
func MapErr[T, R any](collection []T, iteratee func(item T, index int) (R, error)) ([]R, error) {
	result := make([]R, len(collection))

	for i, item := range collection {
		r, err := iteratee(item, i)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		result[i] = r
	}

	return result, nil
}
