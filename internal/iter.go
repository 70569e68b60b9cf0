package internal

import (
	"iter"
)

// SeqConcat chains multiple sequences into one, in argument order.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// SeqValues drops the keys of a dual-return sequence.
func SeqValues[K any, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range seq {
			if !yield(val) {
				return
			}
		}
	}
}
