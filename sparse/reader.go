// SPDX-License-Identifier: MIT

// Package sparse: Matrix-Market ingestion.
//
// The reader consumes the simple coordinate interchange format:
//
//	%%MatrixMarket matrix coordinate real general   <- comments, skipped
//	% any further comment lines                     <- skipped
//	rows cols nnz                                   <- dimensions line
//	row col value                                   <- 1-based entries
//
// After the dimensions line the matrix is resized and cleared, so a
// failed entry leaves behind a consistent matrix holding the entries
// applied up to the failure. Duplicate coordinates are last-write-wins.
// Complex element types read the value as a `re im` field pair and also
// accept single-field real data with a zero imaginary part.
package sparse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readerErrorf wraps a sentinel plus detail with reader context.
func readerErrorf(path string, sentinel, detail error) error {
	if detail == nil {
		return fmt.Errorf("ReadMatrixMarket(%s): %w", path, sentinel)
	}
	return fmt.Errorf("ReadMatrixMarket(%s): %w: %w", path, sentinel, detail)
}

// ReadMatrixMarket loads the matrix from a Matrix-Market coordinate file,
// replacing the current shape and contents.
// Returns ErrIO when the file cannot be opened or read (OS detail
// attached), ErrParse on malformed numeric fields, ErrOutOfRange when an
// entry lies outside the declared shape.
// Complexity: O(file size + nnz log nnz).
func (m *Matrix[T]) ReadMatrixMarket(path string) error {
	return readMatrixMarket[T](path, func(rows, cols int) error {
		return m.ResizeAndClear(rows, cols)
	}, m.Set)
}

// ReadMatrixMarket loads a square matrix from a Matrix-Market coordinate
// file. A header whose rows and cols differ fails with ErrShapeMismatch
// before any state is touched.
func (m *SquareMatrix[T]) ReadMatrixMarket(path string) error {
	return readMatrixMarket[T](path, func(rows, cols int) error {
		if rows != cols {
			return validatorErrorf("ReadMatrixMarket", ErrShapeMismatch)
		}
		return m.ResizeAndClear(rows)
	}, m.Set)
}

// readMatrixMarket drives the shared scan; resize and set are the only
// two touch points with the target, so the general and square variants
// differ solely in their resize policy.
func readMatrixMarket[T Scalar](path string, resize func(rows, cols int) error, set func(r, c int, v T) error) error {
	f, err := os.Open(path)
	if err != nil {
		return readerErrorf(path, ErrIO, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sawDims := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue // header, comment or blank line
		}
		fields := strings.Fields(line)

		if !sawDims {
			// Dimensions line: rows cols nnz (nnz is advisory only).
			if len(fields) != 3 {
				return readerErrorf(path, ErrParse, fmt.Errorf("dimensions line %q", line))
			}
			rows, errR := strconv.Atoi(fields[0])
			cols, errC := strconv.Atoi(fields[1])
			if _, errN := strconv.Atoi(fields[2]); errR != nil || errC != nil || errN != nil {
				return readerErrorf(path, ErrParse, fmt.Errorf("dimensions line %q", line))
			}
			if err = resize(rows, cols); err != nil {
				return err
			}
			sawDims = true
			continue
		}

		// Entry line: row col value[...], indices 1-based.
		if len(fields) < 3 {
			return readerErrorf(path, ErrParse, fmt.Errorf("entry line %q", line))
		}
		row, errR := strconv.Atoi(fields[0])
		col, errC := strconv.Atoi(fields[1])
		if errR != nil || errC != nil {
			return readerErrorf(path, ErrParse, fmt.Errorf("entry line %q", line))
		}
		value, errV := parseScalar[T](fields[2:])
		if errV != nil {
			return readerErrorf(path, ErrParse, errV)
		}
		if err = set(row-1, col-1, value); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return readerErrorf(path, ErrIO, err)
	}
	if !sawDims {
		return readerErrorf(path, ErrParse, fmt.Errorf("missing dimensions line"))
	}
	return nil
}

// parseScalar converts the value fields of one entry line into T. Real
// element types read the first field only; complex types take a `re im`
// pair or fall back to a single real field. Further fields are ignored.
func parseScalar[T Scalar](fields []string) (T, error) {
	var zero T
	re, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return zero, fmt.Errorf("value field %q", fields[0])
	}
	im := 0.0
	isComplex := false
	switch any(zero).(type) {
	case complex64, complex128:
		isComplex = true
	}
	if isComplex && len(fields) >= 2 {
		if im, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return zero, fmt.Errorf("value field %q", fields[1])
		}
	}
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T), nil
	case float64:
		return any(re).(T), nil
	case complex64:
		return any(complex64(complex(re, im))).(T), nil
	default:
		return any(complex(re, im)).(T), nil
	}
}
