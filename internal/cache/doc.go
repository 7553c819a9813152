// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

/*
Package cache provides a thread-safe in-memory TTL cache for encoded API
responses.

The /movies endpoint stores each JSON body under the normalized filter key
(see models.MovieFilter.CacheKey), so repeated queries skip the store and
the encoder. Win intervals are never cached.

# Expiration

Entries expire lazily on Get. Serve runs a periodic sweep and is started by
the supervisor tree in the data layer:

	c := cache.New(5 * time.Minute)
	tree.AddDataService(c)

A zero TTL disables caching entirely.

# Metrics

Lookups feed the movies_cache_hits_total and movies_cache_misses_total
counters and the movies_cache_entries gauge tracks the current size.
*/
package cache
