// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import "slices"

func Filter[T any](s []T, f func(T) bool) []T {
	// Pre-allocate with input length as capacity (worst case: all elements pass filter)
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func Find[T any](s []T, f func(T) bool) (T, bool) {
	for _, v := range s {
		if f(v) {
			return v, true
		}
	}
	var t T
	return t, false
}

func Contains[T comparable](s []T, el T) bool {
	return slices.Contains(s, el)
}

// Chunk splits s into slices of at most size elements. The chunks share the backing array with s.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		return [][]T{s}
	}
	res := make([][]T, 0, (len(s)+size-1)/size)
	for size < len(s) {
		s, res = s[size:], append(res, s[:size:size])
	}
	if len(s) > 0 {
		res = append(res, s)
	}
	return res
}

// UniqBy keeps the last element for every key, in the order of the first occurrence.
func UniqBy[T any, K comparable](s []T, f func(T) K) []T {
	index := make(map[K]int)
	res := make([]T, 0, len(s))
	for _, v := range s {
		k := f(v)
		if i, ok := index[k]; ok {
			res[i] = v
			continue
		}
		index[k] = len(res)
		res = append(res, v)
	}
	return res
}
