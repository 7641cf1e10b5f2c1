package util

import (
	"math/big"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/constraints"
)

func OpenFileOrStdin(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func GetKeys[A comparable, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// Sum adds nums without wrapping around.
func Sum[A constraints.Integer](nums []A) *big.Int {
	total := new(big.Int)
	var v big.Int
	for _, n := range nums {
		if n < 0 {
			v.SetInt64(int64(n))
		} else {
			v.SetUint64(uint64(n))
		}
		total.Add(total, &v)
	}
	return total
}

// OrderedKeys lists the keys of m oldest first. A nil map has no keys.
func OrderedKeys[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []K {
	if m == nil {
		return nil
	}
	keys := make([]K, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
