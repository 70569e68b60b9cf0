package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := SeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestSeqValues(t *testing.T) {
	assert := assert.New(t)

	seq := SeqValues(slices.All([]string{"a", "b"}))
	assert.Equal([]string{"a", "b"}, slices.Collect(seq))

	seq = SeqValues(maps.All(map[int]string{}))
	assert.Empty(slices.Collect(seq))
}
