// Package linalg inverts square ndarray matrices by Gauss-Jordan elimination.
//
// 🚀 What is in here?
//
//	Inv          — A⁻¹ for real (int32 → float64) and complex dtypes
//	Augment      — builds the [A | I] scratch matrix
//	GaussJordan  — in-place reduction of [A | I] to [I | A⁻¹]
//	Solve        — x = A⁻¹ @ b
//
// ✨ Numeric contract:
//
//   - Pivoting only avoids exact zeros: a row is swapped in when the
//     diagonal entry is 0 (both components, for complex input).
//   - Singular input does not fail. The zero pivot divides through and the
//     result holds NaN/±Inf; check with math.IsNaN / math.IsInf if needed.
//
// ⚙️ Usage:
//
//	a, _ := ndarray.New([][]float64{{4, 7}, {2, 6}})
//	inv, _ := linalg.Inv(a)
//	fmt.Print(ndarray.Round(inv, 2)) // [0.6, -0.7] / [-0.2, 0.4]
package linalg
