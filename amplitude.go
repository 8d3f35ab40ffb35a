package qsphere

// SquaredMagnitude returns re² + im² of an amplitude
func SquaredMagnitude(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}

// ScaleReal scales an amplitude by a real factor
func ScaleReal(a complex128, k float64) complex128 {
	return a * complex(k, 0)
}
