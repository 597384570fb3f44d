// Package ndarray provides a dense rank-1/rank-2 array with selectable real
// or complex element storage.
//
// 🚀 What is in here?
//
//	Array      — dtype + shape + row-major storage (flat index row*cols + col)
//	DType      — closed set {int32, float32, float64, complex64, complex128}
//	Storage    — sealed variant: RealStorage{Re} | ComplexStorage{Re, Im}
//	Factories  — New, FromSlice, FromRows, Empty, Zeros, Ones, Identity, Copy
//	Indexing   — Get / SetScalar / SetArray with Index and Slice keys
//	Arithmetic — Add, Sub, Mul, Div, scalar and reflected forms, Neg, Inv
//	Algebra    — Transpose, MatMul
//	Layout     — Reshape, HSplit, VSplit, HStack, VStack, Round
//
// ✨ Guarantees:
//
//   - Every operation allocates its result; arrays never share buffers.
//   - Complex-vs-real dispatch is a type switch on Storage, never a flag.
//   - No panics on user input: errors are package sentinels wrapped with an
//     operation tag, matched via errors.Is. The error-free helpers Neg, Inv
//     and Round map a nil array to nil.
//   - Numeric edge cases follow IEEE: division by zero yields ±Inf/NaN.
//
// ⚙️ Usage:
//
//	a, _ := ndarray.New([][]float64{{1, 2}, {3, 4}})
//	b, _ := ndarray.Identity(2)
//	c, _ := ndarray.MatMul(a, b)
//	row, _ := c.Get(ndarray.Index(0), ndarray.All())
//	fmt.Println(row.Array().ToList()) // [1 2]
//
// The fft and linalg packages build on the raw buffers exposed through
// (*Array).Storage.
package ndarray
