package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"raincast/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	got, err := lox.MapErr([]string{"1", "2.5", "-3"}, func(s string, _ int) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	rq.NoError(err)
	rq.Equal([]float64{1, 2.5, -3}, got)

	errBoom := errors.New("boom")

	gotInts, err := lox.MapErr([]int{1, 2, 3}, func(n int, i int) (int, error) {
		if i == 1 {
			return 0, errBoom
		}

		return n, nil
	})
	rq.Nil(gotInts)
	rq.ErrorIs(err, errBoom)
	rq.ErrorContains(err, "item 1: boom")
}
