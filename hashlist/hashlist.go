// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashlist

import (
	"github.com/tidwall/hashmap"

	"github.com/kwik-go/kwik/fault"
)

// Node - one element of a list
type Node[K comparable, V any] struct {
	key   K
	value V
	next  *Node[K, V]
	prev  *Node[K, V]
}

// NewNode - create a detached node for PushFrontNode/PushBackNode
func NewNode[K comparable, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

// Key - read the key of a node
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value of a node
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - overwrite the value of a node
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Next - following node, nil at the tail
func (p *Node[K, V]) Next() *Node[K, V] {
	return p.next
}

// Prev - preceding node, nil at the head
func (p *Node[K, V]) Prev() *Node[K, V] {
	return p.prev
}

// List - type to hold a key indexed doubly linked list
type List[K comparable, V any] struct {
	head  *Node[K, V]
	tail  *Node[K, V]
	size  int
	index *hashmap.Map[K, *Node[K, V]]
}

// New - create an initially empty list
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{
		index: hashmap.New[K, *Node[K, V]](8),
	}
}

// Head - first node of the list, nil when empty
func (list *List[K, V]) Head() *Node[K, V] {
	return list.head
}

// Tail - last node of the list, nil when empty
func (list *List[K, V]) Tail() *Node[K, V] {
	return list.tail
}

// Size - number of nodes currently in the list
func (list *List[K, V]) Size() int {
	return list.size
}

// IsEmpty - true if the list contains no nodes
func (list *List[K, V]) IsEmpty() bool {
	return 0 == list.size
}

// Get - O(1) lookup of the node bound to a key, nil if absent
func (list *List[K, V]) Get(key K) *Node[K, V] {
	node, ok := list.index.Get(key)
	if !ok {
		return nil
	}
	return node
}

// PushFront - bind a key to a value and link it at the head
func (list *List[K, V]) PushFront(key K, value V) error {
	return list.PushFrontNode(NewNode(key, value))
}

// PushFrontNode - link a pre-constructed node at the head
func (list *List[K, V]) PushFrontNode(node *Node[K, V]) error {
	if err := list.emplace(node); err != nil {
		return err
	}

	if 0 == list.size {
		list.head = node
		list.tail = node
	} else {
		node.next = list.head
		list.head.prev = node
		list.head = node
	}

	list.size += 1
	return nil
}

// PushBack - bind a key to a value and link it at the tail
func (list *List[K, V]) PushBack(key K, value V) error {
	return list.PushBackNode(NewNode(key, value))
}

// PushBackNode - link a pre-constructed node at the tail
func (list *List[K, V]) PushBackNode(node *Node[K, V]) error {
	if err := list.emplace(node); err != nil {
		return err
	}

	if 0 == list.size {
		list.head = node
		list.tail = node
	} else {
		node.prev = list.tail
		list.tail.next = node
		list.tail = node
	}

	list.size += 1
	return nil
}

// MoveFront - relink an existing node at the head
func (list *List[K, V]) MoveFront(node *Node[K, V]) {
	if list.head == node {
		return
	}

	list.dislodge(node)

	node.next = list.head
	list.head.prev = node
	list.head = node
}

// MoveBack - relink an existing node at the tail
func (list *List[K, V]) MoveBack(node *Node[K, V]) {
	if list.tail == node {
		return
	}

	list.dislodge(node)

	node.prev = list.tail
	list.tail.next = node
	list.tail = node
}

// MoveBefore - reposition the node bound to key directly before the
// node bound to beforeKey
func (list *List[K, V]) MoveBefore(key K, beforeKey K) error {
	node := list.Get(key)
	if nil == node {
		return fault.ErrKeyNotFound
	}
	anchor := list.Get(beforeKey)
	if nil == anchor {
		return fault.ErrKeyNotFound
	}
	list.placeBefore(anchor, node)
	return nil
}

// MoveAfter - reposition the node bound to key directly after the
// node bound to afterKey
func (list *List[K, V]) MoveAfter(key K, afterKey K) error {
	node := list.Get(key)
	if nil == node {
		return fault.ErrKeyNotFound
	}
	anchor := list.Get(afterKey)
	if nil == anchor {
		return fault.ErrKeyNotFound
	}
	list.placeAfter(anchor, node)
	return nil
}

// PlaceBefore - link a node, new or already listed, directly before
// an existing node; a new node must not collide with a bound key
func (list *List[K, V]) PlaceBefore(anchor *Node[K, V], node *Node[K, V]) error {
	got, ok := list.index.Get(node.key)
	if ok && got != node {
		return fault.ErrKeyNodeMismatch
	}
	if !ok {
		list.index.Set(node.key, node)
		list.size += 1
	}
	list.placeBefore(anchor, node)
	return nil
}

// PlaceAfter - link a node, new or already listed, directly after an
// existing node; a new node must not collide with a bound key
func (list *List[K, V]) PlaceAfter(anchor *Node[K, V], node *Node[K, V]) error {
	got, ok := list.index.Get(node.key)
	if ok && got != node {
		return fault.ErrKeyNodeMismatch
	}
	if !ok {
		list.index.Set(node.key, node)
		list.size += 1
	}
	list.placeAfter(anchor, node)
	return nil
}

// Remove - unbind a key and unlink its node; absent keys are a no-op
func (list *List[K, V]) Remove(key K) bool {
	node, ok := list.index.Delete(key)
	if !ok {
		return false
	}
	list.dislodge(node)
	list.size -= 1
	return true
}

// RemoveNode - unbind and unlink a node already held by the caller
func (list *List[K, V]) RemoveNode(node *Node[K, V]) {
	if nil == node {
		return
	}
	if _, ok := list.index.Delete(node.key); !ok {
		return
	}
	list.dislodge(node)
	list.size -= 1
}

// bind the node's key, rejecting duplicates
func (list *List[K, V]) emplace(node *Node[K, V]) error {
	if _, ok := list.index.Get(node.key); ok {
		return fault.ErrKeyAlreadyExists
	}
	list.index.Set(node.key, node)
	return nil
}

// unlink a node, leaving head/tail and neighbours consistent
func (list *List[K, V]) dislodge(node *Node[K, V]) {
	if list.head == node {
		list.head = node.next
	}
	if list.tail == node {
		list.tail = node.prev
	}

	if node.next != nil {
		node.next.prev = node.prev
	}
	if node.prev != nil {
		node.prev.next = node.next
	}

	node.next = nil
	node.prev = nil
}

func (list *List[K, V]) placeBefore(anchor *Node[K, V], node *Node[K, V]) {
	if anchor.prev == node || anchor == node {
		return
	}

	list.dislodge(node)

	node.next = anchor
	node.prev = anchor.prev
	if anchor.prev != nil {
		anchor.prev.next = node
	}
	anchor.prev = node

	if list.head == anchor {
		list.head = node
	}
}

func (list *List[K, V]) placeAfter(anchor *Node[K, V], node *Node[K, V]) {
	if anchor.next == node || anchor == node {
		return
	}

	list.dislodge(node)

	node.prev = anchor
	node.next = anchor.next
	if anchor.next != nil {
		anchor.next.prev = node
	}
	anchor.next = node

	if list.tail == anchor {
		list.tail = node
	}
}
