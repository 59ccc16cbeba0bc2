package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

const (
	// blockLog is the largest size kept entirely in locals. Larger codelets
	// run fht16 per block and finish the remaining passes on strided groups.
	blockLog = 4

	// maxSupportedLog bounds the generated file size.
	maxSupportedLog = 10

	// namesPerLine is how many loads or stores share one tuple assignment.
	namesPerLine = 4
)

type generator struct {
	buf bytes.Buffer
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// generate returns the gofmt'ed source of the codelet file for log sizes
// 1 .. maxLog, plus the lookup table starting at the identity for log 0.
func generate(pkg string, maxLog int) ([]byte, error) {
	if maxLog < 1 || maxLog > maxSupportedLog {
		return nil, fmt.Errorf("max log %d out of range [1, %d]", maxLog, maxSupportedLog)
	}
	if pkg == "" {
		return nil, fmt.Errorf("empty package name")
	}

	g := &generator{}
	g.header(pkg, maxLog)

	for logN := 1; logN <= maxLog; logN++ {
		if logN <= blockLog {
			g.direct(logN)
		} else {
			g.blocked(logN)
		}
	}

	g.table(maxLog)

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}

func (g *generator) header(pkg string, maxLog int) {
	g.printf("// Code generated by fhtgen. DO NOT EDIT.\n\n")
	g.printf("package %s\n\n", pkg)
	g.printf("import \"github.com/cwbudde/algo-fht/internal/fhtypes\"\n\n")
	g.printf("// MaxLog is the largest log2 size with a generated codelet.\n")
	g.printf("const MaxLog = %d\n", maxLog)
}

// direct emits a codelet that loads all n values into locals, runs every
// pass on the locals and stores them back.
func (g *generator) direct(logN int) {
	n := 1 << logN

	g.printf("\n// fht%d transforms buf[:%d] in place with every value held in locals.\n", n, n)
	g.printf("func fht%d[T fhtypes.Float](buf []T) {\n", n)
	g.printf("\tb := (*[%d]T)(buf)\n", n)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	g.load("\t", "x", idx)

	for p := 0; p < logN; p++ {
		g.printf("\n\t// pass %d\n", p)
		g.passes("\t", "x", n, p)
	}

	g.printf("\n")
	g.store("\t", "x", idx)
	g.printf("}\n")
}

// blocked emits a codelet that runs fht16 on each 16-element block, then
// performs passes blockLog .. logN-1 on the groups {i, i+16, i+32, ...}.
func (g *generator) blocked(logN int) {
	n := 1 << logN
	block := 1 << blockLog
	groupSize := n / block
	groupLog := logN - blockLog

	g.printf("\n// fht%d transforms buf[:%d] in place: fht%d on each block, then\n", n, n, block)
	g.printf("// passes %d-%d on stride-%d groups held in locals.\n", blockLog, logN-1, block)
	g.printf("func fht%d[T fhtypes.Float](buf []T) {\n", n)
	g.printf("\tb := (*[%d]T)(buf)\n", n)

	for j := 0; j < n; j += block {
		g.printf("\tfht%d(b[%d:%d])\n", block, j, j+block)
	}

	for i := 0; i < block; i++ {
		idx := make([]int, groupSize)
		for k := range idx {
			idx[k] = i + k*block
		}

		g.printf("\t{\n")
		g.load("\t\t", "y", idx)
		for p := 0; p < groupLog; p++ {
			g.passes("\t\t", "y", groupSize, p)
		}
		g.store("\t\t", "y", idx)
		g.printf("\t}\n")
	}

	g.printf("}\n")
}

// passes emits pass p over locals prefix0 .. prefix(n-1).
func (g *generator) passes(indent, prefix string, n, p int) {
	s := 1 << p
	for j := 0; j < n; j += 2 * s {
		for i := j; i < j+s; i++ {
			a := fmt.Sprintf("%s%d", prefix, i)
			b := fmt.Sprintf("%s%d", prefix, i+s)
			g.printf("%s%s, %s = %s+%s, %s-%s\n", indent, a, b, a, b, a, b)
		}
	}
}

// load emits prefixK := b[idx[K]] in chunks of namesPerLine.
func (g *generator) load(indent, prefix string, idx []int) {
	for start := 0; start < len(idx); start += namesPerLine {
		end := min(start+namesPerLine, len(idx))
		lhs, rhs := operands(prefix, idx, start, end)
		g.printf("%s%s := %s\n", indent, lhs, rhs)
	}
}

// store emits b[idx[K]] = prefixK in chunks of namesPerLine.
func (g *generator) store(indent, prefix string, idx []int) {
	for start := 0; start < len(idx); start += namesPerLine {
		end := min(start+namesPerLine, len(idx))
		locals, elems := operands(prefix, idx, start, end)
		g.printf("%s%s = %s\n", indent, elems, locals)
	}
}

func operands(prefix string, idx []int, start, end int) (locals, elems string) {
	l := make([]string, 0, end-start)
	e := make([]string, 0, end-start)
	for k := start; k < end; k++ {
		l = append(l, fmt.Sprintf("%s%d", prefix, k))
		e = append(e, fmt.Sprintf("b[%d]", idx[k]))
	}
	return strings.Join(l, ", "), strings.Join(e, ", ")
}

func (g *generator) table(maxLog int) {
	g.printf("\n// table returns the codelets indexed by log2 size.\n")
	g.printf("func table[T fhtypes.Float]() [%d]fhtypes.CodeletFunc[T] {\n", maxLog+1)
	g.printf("\treturn [%d]fhtypes.CodeletFunc[T]{\n", maxLog+1)
	g.printf("\t\tidentity[T],\n")
	for logN := 1; logN <= maxLog; logN++ {
		g.printf("\t\tfht%d[T],\n", 1<<logN)
	}
	g.printf("\t}\n")
	g.printf("}\n")
}
