// Package dandc is a compact library of classic divide-and-conquer
// algorithms over numeric and geometric data — exact sorting, exact
// big-integer multiplication, closest pair of 2D points, and square
// matrix multiplication.
//
// 🚀 What is dandc?
//
//	A small, dependency-light collection of recursive algorithms whose
//	value lives in their combine steps:
//		• mergesort/   — linear-time stable Merge + O(n·log n) Sort (generic)
//		• closestpair/ — O(n·log n) closest pair of points in the plane
//		• karatsuba/   — O(n^1.585) exact multiplication of big integers
//		• strassen/    — O(n^2.807) exact square-matrix multiplication
//
// ✨ Why choose dandc?
//
//   - Pure functions – no shared state, no I/O, deterministic results
//   - Fail-fast contracts – sentinel errors before any recursion starts
//   - Exactness first – integer-exact products, brute-force-equal pairs
//   - Pure Go – no cgo, no hidden deps
//
// Each subpackage is self-contained; the only cross-package reuse is
// conceptual: closestpair maintains y-order through the same linear
// merge that powers mergesort, in its key-function form.
//
// Quick ASCII sketch of the shared shape:
//
//	        problem
//	       ╱       ╲
//	   half A     half B      (recurse)
//	       ╲       ╱
//	       combine            (the interesting part)
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes, and worked examples.
//
//	go get github.com/katalvlaran/dandc
package dandc
