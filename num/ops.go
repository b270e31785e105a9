package num

// Square returns x*x.
func Square[T Number[T]](x T) T {
	return x * x
}

// Cube returns x*x*x.
func Cube[T Number[T]](x T) T {
	return x * x * x
}

// Half divides x by 2 in its own domain, so integer domains drop the
// remainder.
func Half[T Number[T]](x T) T {
	return x / From[T](2)
}

// Double returns x multiplied by 2.
func Double[T Number[T]](x T) T {
	return x * From[T](2)
}
