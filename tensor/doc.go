// Copyright 2026 The dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor implements a dense N-dimensional array engine with
// row-major storage, NumPy-style broadcasting and axis-wise reductions.
//
// # Overview
//
// A Tensor[T] owns one Shape, one contiguous buffer and one Config.
// All shape arithmetic lives on Shape; broadcasting decisions live in
// the pure Broadcast function; reductions are built on the AxisGroups
// partition.
//
// # Basic Usage
//
//	import "github.com/dense-ml/dense/tensor"
//
//	func main() {
//	    a, _ := tensor.Sequence[float32](tensor.Shape{2, 3})
//	    b, _ := tensor.Ones[float32](tensor.Shape{3})
//	    c, _ := a.Add(b)             // broadcast to (2, 3)
//	    s, _ := c.Sum(tensor.ReduceAll)
//	    v, _ := s.Item()
//	}
//
// # Addressing
//
// Storage is row-major: the last axis varies fastest. For shape (a, b, c)
// the axis strides are (b*c, c, 1), and FlatIndex computes
// Σ index[i] * stride(i). Reshape never moves data; SwapAxes physically
// permutes the buffer so this formula holds everywhere.
//
// # Broadcasting
//
// Binary operations on mismatched shapes right-align the two shapes and
// repeat size-1 axes, provided both tensors' configurations allow it:
//
//	a, _ := tensor.Zeros[float32](tensor.Shape{3, 1})
//	b, _ := tensor.Ones[float32](tensor.Shape{3, 4})
//	c, _ := a.Add(b) // shape (3, 4)
//
// # Errors
//
// Every contract violation is reported synchronously as a typed sentinel
// (ErrInvalidShape, ErrBroadcast, ErrAxis, ...) wrapped with context;
// match with errors.Is. The engine never logs and never retries.
//
// # Concurrency
//
// Tensors are value-like and unlocked; callers serialize concurrent
// mutation of a shared tensor. Random sources are injected per
// construction call, so seeded construction is deterministic.
package tensor
