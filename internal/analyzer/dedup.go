package analyzer

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/mcncl/jsontaxonomy/internal/models"
)

// DeepEqual reports whether left and right are structurally equal. Objects
// must have the same number of keys and every key of left must map to a
// deeply equal value in right; arrays compare element-wise; scalars compare
// by value. A container never equals a scalar, nor an array an object.
func DeepEqual(left, right models.Value) bool {
	switch l := left.(type) {
	case *models.Object:
		r, ok := right.(*models.Object)
		if !ok || l.Len() != r.Len() {
			return false
		}
		for _, m := range l.Members {
			rv, found := r.Get(m.Key)
			if !found || !DeepEqual(m.Value, rv) {
				return false
			}
		}
		return true
	case models.Array:
		r, ok := right.(models.Array)
		if !ok || len(l) != len(r) {
			return false
		}
		for i := range l {
			if !DeepEqual(l[i], r[i]) {
				return false
			}
		}
		return true
	default:
		return scalarEqual(left, right)
	}
}

func scalarEqual(left, right models.Value) bool {
	switch l := left.(type) {
	case models.Null:
		_, ok := right.(models.Null)
		return ok
	case models.Bool:
		r, ok := right.(models.Bool)
		return ok && l == r
	case models.Number:
		r, ok := right.(models.Number)
		return ok && l == r
	case models.String:
		r, ok := right.(models.String)
		return ok && l == r
	default:
		return false
	}
}

// distinct counts the distinct elements of values.
func distinct[T comparable](values []T) int {
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// distinctStructural counts the containers of nodes that are not DeepEqual
// to any earlier container. sums holds the fingerprint of each node, aligned
// with nodes; equal containers always share a fingerprint, so only nodes of
// the same bucket need to be compared.
func distinctStructural(nodes []models.Value, sums []uint64) int {
	buckets := make(map[uint64][]models.Value)
	unique := 0
	for i, node := range nodes {
		if !models.IsContainer(node) {
			continue
		}
		bucket := buckets[sums[i]]
		if slices.ContainsFunc(bucket, func(seen models.Value) bool {
			return DeepEqual(node, seen)
		}) {
			continue
		}
		buckets[sums[i]] = append(bucket, node)
		unique++
	}
	return unique
}

// fingerprints returns an xxhash64 fingerprint for every node of v, in the
// pre-order of DeepValues. Object members are hashed in key order so that
// member order does not affect the result.
func fingerprints(v models.Value) []uint64 {
	f := &fingerprinter{}
	f.walk(v)
	return f.sums
}

type fingerprinter struct {
	sums []uint64
	buf  [8]byte
}

type keyedSum struct {
	key string
	sum uint64
}

func (f *fingerprinter) walk(v models.Value) uint64 {
	slot := len(f.sums)
	f.sums = append(f.sums, 0)

	d := xxhash.New()
	switch node := v.(type) {
	case models.Array:
		_, _ = d.WriteString("[")
		for _, child := range node {
			f.writeSum(d, f.walk(child))
		}
	case *models.Object:
		entries := make([]keyedSum, len(node.Members))
		for i, m := range node.Members {
			entries[i] = keyedSum{key: m.Key, sum: f.walk(m.Value)}
		}
		slices.SortFunc(entries, func(a, b keyedSum) int {
			return strings.Compare(a.key, b.key)
		})
		_, _ = d.WriteString("{")
		for _, e := range entries {
			_, _ = d.Write(models.AppendScalar(nil, models.String(e.key)))
			f.writeSum(d, e.sum)
		}
	default:
		_, _ = d.Write([]byte{byte(v.Kind())})
		_, _ = d.Write(models.AppendScalar(nil, v))
	}

	sum := d.Sum64()
	f.sums[slot] = sum
	return sum
}

func (f *fingerprinter) writeSum(d *xxhash.Digest, sum uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], sum)
	_, _ = d.Write(f.buf[:])
}
