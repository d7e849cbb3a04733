package bufkit

// Package bufkit provides buffered reader and writer contracts that are generic over their
// error type. Readers hand out zero-copy views into their internal buffer via FillBuf/Consume,
// writers accept all-or-nothing writes via WriteAll/Flush, and a small family of adapters
// (Take, Chain, the error-mapping wrappers and the io bridges) composes them without copying
// data or losing error information.
