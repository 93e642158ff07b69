// Package buffer sizes and carves the caller-owned storage a sliding
// DFT engine operates on. The engine itself never allocates; Arena is
// an optional convenience that satisfies its buffer contract with a
// single backing slice, either freshly allocated or provided by the
// caller (arena-style, for embedded or real-time use).
package buffer
