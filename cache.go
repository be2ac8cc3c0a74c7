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
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired entries every 5 minutes
const renderedCacheCleanup = 5 * time.Minute

// NewRenderedCache creates the cache holding rendered record details
func NewRenderedCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, renderedCacheCleanup)
}

func CacheRendered(c *cache.Cache, key string, rendered string) {
	// Set instead of Add so a re-render after an edit overwrites
	c.Set(key, rendered, cache.DefaultExpiration)
}

func GetRendered(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
