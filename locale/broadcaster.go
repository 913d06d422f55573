// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import "sync"

// Broadcaster is a document-wide notification channel announcing locale
// transitions. Any number of independently-lifecycled listeners may
// attach and detach over their own lifetimes.
//
// Delivery is synchronous: Broadcast returns after every listener that
// was attached at emission time has been invoked exactly once. Each
// attached listener observes emissions in the order they occur;
// ordering across listeners within one emission is unspecified.
//
// Safe for concurrent use. The zero value is not ready; use NewBroadcaster.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(locale string)
}

// NewBroadcaster returns a Broadcaster with no listeners.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe attaches fn and returns a cancel function that detaches it.
// Cancelling twice is harmless. Attach and detach are the only mutation
// points; a listener can never end up subscribed twice from one call.
func (b *Broadcaster) Subscribe(fn func(locale string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)

				break
			}
		}
	}
}

// Broadcast announces a completed locale transition to every currently
// attached listener.
//
// Callers must apply persistence and document markers before
// broadcasting so that listeners invoked synchronously observe
// fully-updated global state.
func (b *Broadcaster) Broadcast(locale string) {
	b.mu.Lock()
	fns := make([]func(string), len(b.subs))

	for i, sub := range b.subs {
		fns[i] = sub.fn
	}
	b.mu.Unlock()

	// Invoke outside the lock so listeners may detach themselves
	// (or attach new listeners) without deadlocking.
	for _, fn := range fns {
		fn(locale)
	}
}

// Len reports the number of currently attached listeners.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}
