package Trees

import (
	"math/rand"
	"testing"
)

const (
	bSize = 1 << 15
)

func BenchmarkAVLTree_Insert(b *testing.B) {
	var t *AVLTree[Ordered[int]]
	for range b.N {
		t = New[Ordered[int]]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(Wrap(j))
		}
	}
	b.Log(t.Height())
}

func BenchmarkAVLTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := New[Ordered[int]]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(Wrap(j))
		}
		b.StartTimer()
		for j := range bSize {
			t.Remove(Wrap(j))
		}
	}
}

func BenchmarkAVLTree_Contains(b *testing.B) {
	t := New[Ordered[int]]()
	for _, j := range rand.Perm(bSize) {
		t.Insert(Wrap(j))
	}
	b.ResetTimer()
	for range b.N {
		for j := range bSize {
			t.Contains(Wrap(j))
		}
	}
}

func BenchmarkAVLTree_All(b *testing.B) {
	var t *AVLTree[Ordered[int]]
	for range b.N {
		t = New[Ordered[int]]()
		for _, j := range rand.Perm(bSize / 2) {
			t.Insert(Wrap(j))
		}
		for j, k := range rand.Perm(bSize / 2) {
			if k&1 == 1 {
				t.Remove(Wrap(j))
			}
		}
		for _, j := range rand.Perm(bSize / 2) {
			t.Insert(Wrap(j + bSize))
		}
		for j, k := range rand.Perm(bSize / 2) {
			if k&1 == 1 {
				t.Insert(Wrap(j))
			}
		}
	}
	b.Log(t.Height())
}
