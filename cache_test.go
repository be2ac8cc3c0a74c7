// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderedAndGetRendered(t *testing.T) {
	c := NewRenderedCache(time.Minute)
	key := "738895"
	page := "# Exports 01/01/2023"

	// Initially, GetRendered should return an empty string for a missing key.
	if got := GetRendered(c, key); got != "" {
		t.Errorf("GetRendered(%q) = %q; want empty string", key, got)
	}

	CacheRendered(c, key, page)

	if got := GetRendered(c, key); got != page {
		t.Errorf("GetRendered(%q) = %q; want %q", key, got, page)
	}

	// A second render replaces the first
	CacheRendered(c, key, page+" (edited)")
	if got := GetRendered(c, key); got != page+" (edited)" {
		t.Errorf("GetRendered(%q) after overwrite = %q", key, got)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"
	page := "This page should expire soon."

	c.Set(key, page, 100*time.Millisecond)

	// Immediately after caching, the page should be retrievable.
	if got := GetRendered(c, key); got != page {
		t.Errorf("GetRendered(%q) = %q; want %q", key, got, page)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetRendered(c, key); got != "" {
		t.Errorf("After expiration, GetRendered(%q) = %q; want empty string", key, got)
	}
}
