// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic LRU cache.
//
// It backs the brush tip cache: tip masks are expensive to rasterise and a
// drawing session reuses only a handful of (diameter, hardness) pairs.
//
//	c := cache.New[tipKey, *image.Alpha](64)
//	mask := c.GetOrCreate(key, func() *image.Alpha { return buildTip(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
