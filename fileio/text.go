// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fileio

import (
	"bufio"
	"io"
	"os"
)

// TextReader - read a file line by line
type TextReader struct {
	file    *os.File
	scanner *bufio.Scanner
	count   uint64
}

// NewTextReader - open a file for line oriented reading
func NewTextReader(path string) (*TextReader, error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	return &TextReader{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// ReadLine - next line without its terminator, io.EOF when exhausted
func (r *TextReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); nil != err {
			return "", err
		}
		return "", io.EOF
	}
	r.count += 1
	return r.scanner.Text(), nil
}

// ForEach - apply a function to every remaining line
func (r *TextReader) ForEach(fn func(line string) error) error {
	for {
		line, err := r.ReadLine()
		if io.EOF == err {
			return nil
		}
		if nil != err {
			return err
		}
		if err := fn(line); nil != err {
			return err
		}
	}
}

// Count - number of lines read so far
func (r *TextReader) Count() uint64 {
	return r.count
}

// Size - number of bytes in the opened file
func (r *TextReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if nil != err {
		return 0, err
	}
	return info.Size(), nil
}

// Close - release the underlying file
func (r *TextReader) Close() error {
	return r.file.Close()
}

// TextWriter - write a file line by line through a buffer
type TextWriter struct {
	file  *os.File
	out   *bufio.Writer
	count uint64
}

// NewTextWriter - create or truncate a file for line oriented writing
func NewTextWriter(path string) (*TextWriter, error) {
	file, err := os.Create(path)
	if nil != err {
		return nil, err
	}
	return &TextWriter{
		file: file,
		out:  bufio.NewWriter(file),
	}, nil
}

// WriteLine - append one line, adding the terminator
func (w *TextWriter) WriteLine(line string) error {
	if _, err := w.out.WriteString(line); nil != err {
		return err
	}
	if err := w.out.WriteByte('\n'); nil != err {
		return err
	}
	w.count += 1
	return nil
}

// Count - number of lines written so far
func (w *TextWriter) Count() uint64 {
	return w.count
}

// Flush - push buffered data to the file
func (w *TextWriter) Flush() error {
	return w.out.Flush()
}

// Close - flush and release the underlying file
func (w *TextWriter) Close() error {
	if err := w.out.Flush(); nil != err {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
