package algofht

import "fmt"

// TransformStrided transforms the Len() elements buf[0], buf[stride],
// buf[2*stride], ... in place, leaving every other element untouched.
// For example, stride=numCols transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if buf is nil, ErrInvalidStride if stride < 1 or the
// span overflows int, and ErrLengthMismatch if buf is too short.
func (p *Plan[T]) TransformStrided(buf []T, stride int) error {
	if err := p.validateStrided(buf, stride); err != nil {
		return err
	}

	if stride == 1 {
		p.kernel(buf[:p.n])
		return nil
	}

	if p.stridedScratch == nil {
		p.stridedScratch = make([]T, p.n)
	}

	scratch := p.stridedScratch[:p.n]
	for i := range scratch {
		scratch[i] = buf[i*stride]
	}

	p.kernel(scratch)

	for i, v := range scratch {
		buf[i*stride] = v
	}

	return nil
}

func (p *Plan[T]) validateStrided(buf []T, stride int) error {
	if buf == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return fmt.Errorf("%w: stride %d", ErrInvalidStride, stride)
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1
	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return fmt.Errorf("%w: stride %d overflows for size %d", ErrInvalidStride, stride, p.n)
	}

	required := 1 + maxIndex*stride
	if len(buf) < required {
		return fmt.Errorf("%w: stride %d needs %d elements, got %d", ErrLengthMismatch, stride, required, len(buf))
	}

	return nil
}
