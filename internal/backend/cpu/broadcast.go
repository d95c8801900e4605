package cpu

import "github.com/grind-ml/grind/internal/tensor"

// broadcastStrides returns read strides for treating a tensor of shape in
// as if it were expanded to shape out. Stretched axes (size 1, or absent on
// the left) read with stride 0 so every output index maps back into the
// smaller operand.
func broadcastStrides(in, out tensor.Shape) []int {
	strides := make([]int, len(out))
	inStrides := in.Strides()
	offset := len(out) - len(in)

	for i := range out {
		j := i - offset
		if j < 0 || in[j] == 1 {
			strides[i] = 0
		} else {
			strides[i] = inStrides[j]
		}
	}
	return strides
}

// srcIndex maps a flat index in the output tensor to the flat index of the
// broadcast source described by srcStrides.
func srcIndex(flat int, outStrides, srcStrides []int) int {
	idx := 0
	for i := range outStrides {
		coord := flat / outStrides[i]
		flat %= outStrides[i]
		idx += coord * srcStrides[i]
	}
	return idx
}
