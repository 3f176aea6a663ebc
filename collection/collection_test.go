package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAssignsDenseKeys(t *testing.T) {
	m := New[string]()
	for i := 0; i < 5; i++ {
		key := m.Add("entry")
		assert.Equal(t, i+1, key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, m.Keys())
	assert.Equal(t, 5, m.Len())
}

func TestDeleteLeavesHole(t *testing.T) {
	m := New[string]()
	m.Add("a")
	m.Add("b")
	m.Add("c")

	m.Delete(2)
	assert.Equal(t, []int{1, 3}, m.Keys())
	_, ok := m.Get(2)
	assert.False(t, ok)

	// missing key is a no-op
	m.Delete(99)
	assert.Equal(t, 2, m.Len())
}

func TestAddAfterDeleteReusesSizePlusOne(t *testing.T) {
	m := New[string]()
	m.Add("a")
	m.Add("b")
	m.Add("c")
	m.Delete(1)

	// size is 2, so the next insert lands on the still-occupied key 3
	key := m.Add("d")
	assert.Equal(t, 3, key)
	got, _ := m.Get(3)
	assert.Equal(t, "d", got)
	assert.Equal(t, []int{2, 3}, m.Keys())
}

func TestEachVisitsInInsertionOrder(t *testing.T) {
	m := New[int]()
	m.Add(10)
	m.Add(20)
	m.Add(30)
	m.Delete(2)

	var keys []int
	var vals []int
	m.Each(func(k, v int) {
		keys = append(keys, k)
		vals = append(vals, v)
	})
	assert.Equal(t, []int{1, 3}, keys)
	assert.Equal(t, []int{10, 30}, vals)
}

func TestSnapshot(t *testing.T) {
	m := New[int]()
	m.Add(1)
	m.Add(2)
	got := Snapshot(m, func(v int) int { return v * 10 })
	assert.Equal(t, map[int]int{1: 10, 2: 20}, got)
}
