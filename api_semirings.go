package forClusteringGo

import GrB "github.com/intel/forGraphBLASGo"

// PlusOne counts the structural matches of a matrix product.
func PlusOne[T GrB.Number, Din1, Din2 any]() (addition GrB.Monoid[T], multiplication GrB.BinaryOp[T, Din1, Din2], identity T) {
	return GrB.PlusMonoid[T], GrB.Oneb[T, Din1, Din2], 0
}

// PlusFirst sums the entries of the left operand that meet an entry of the
// right one. With a dense right-hand vector it gives row sums.
func PlusFirst[T GrB.Number, Din2 any]() (addition GrB.Monoid[T], multiplication GrB.BinaryOp[T, T, Din2], identity T) {
	return GrB.PlusMonoid[T], GrB.First[T, Din2], 0
}
