// Copyright 2025 go-exposure Authors
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

package exposure

import "github.com/ajroetker/go-exposure/exposure/workerpool"

// minParallelElems is the element count below which counting and remapping
// run sequentially even when a pool is supplied; pool dispatch overhead
// dominates smaller inputs.
const minParallelElems = 1 << 16

// parallelCount runs count over [0, n) split across the pool, giving each
// chunk a local bin buffer, then merges the locals by elementwise
// summation. Counts are whole numbers, so the merge is exact and
// order-independent.
func parallelCount(pool *workerpool.Pool, n, bins int, count func(local []float64, start, end int)) []float64 {
	locals := make([][]float64, pool.NumWorkers())
	pool.ParallelForChunks(n, func(chunk, start, end int) {
		local := make([]float64, bins)
		count(local, start, end)
		locals[chunk] = local
	})

	out := make([]float64, bins)
	for _, local := range locals {
		if local == nil {
			continue
		}
		for i, c := range local {
			out[i] += c
		}
	}
	return out
}
