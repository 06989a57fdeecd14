// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fileio

import (
	"bufio"
	"io"
	"os"

	"github.com/kwik-go/kwik/fault"
)

// ChunkUnmarshaler - decode one fixed size record from chunk
type ChunkUnmarshaler interface {
	UnmarshalChunk(chunk []byte) error
}

// ChunkMarshaler - encode the receiver into chunk, which is exactly
// record size bytes long
type ChunkMarshaler interface {
	MarshalChunk(chunk []byte)
}

// BinaryReader - read a file of fixed size binary records
type BinaryReader struct {
	file  *os.File
	in    *bufio.Reader
	chunk []byte
	count uint64
}

// NewBinaryReader - open a file of recordSize byte records
func NewBinaryReader(path string, recordSize int) (*BinaryReader, error) {
	if recordSize <= 0 {
		return nil, fault.ErrShortRecord
	}

	file, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	return &BinaryReader{
		file:  file,
		in:    bufio.NewReader(file),
		chunk: make([]byte, recordSize),
	}, nil
}

// Read - decode the next record, io.EOF when exhausted; a trailing
// partial record is an error
func (r *BinaryReader) Read(record ChunkUnmarshaler) error {
	_, err := io.ReadFull(r.in, r.chunk)
	if io.EOF == err {
		return io.EOF
	}
	if io.ErrUnexpectedEOF == err {
		return fault.ErrShortRecord
	}
	if nil != err {
		return err
	}

	if err := record.UnmarshalChunk(r.chunk); nil != err {
		return err
	}
	r.count += 1
	return nil
}

// ForEach - decode every remaining record, calling fn after each
// successful decode; record is reused between records
func (r *BinaryReader) ForEach(record ChunkUnmarshaler, fn func() error) error {
	for {
		err := r.Read(record)
		if io.EOF == err {
			return nil
		}
		if nil != err {
			return err
		}
		if err := fn(); nil != err {
			return err
		}
	}
}

// Count - number of records read so far
func (r *BinaryReader) Count() uint64 {
	return r.count
}

// Size - number of bytes in the opened file
func (r *BinaryReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if nil != err {
		return 0, err
	}
	return info.Size(), nil
}

// Close - release the underlying file
func (r *BinaryReader) Close() error {
	return r.file.Close()
}

// BinaryWriter - write a file of fixed size binary records
type BinaryWriter struct {
	file  *os.File
	out   *bufio.Writer
	chunk []byte
	count uint64
}

// NewBinaryWriter - create or truncate a file of recordSize byte
// records
func NewBinaryWriter(path string, recordSize int) (*BinaryWriter, error) {
	if recordSize <= 0 {
		return nil, fault.ErrShortRecord
	}

	file, err := os.Create(path)
	if nil != err {
		return nil, err
	}
	return &BinaryWriter{
		file:  file,
		out:   bufio.NewWriter(file),
		chunk: make([]byte, recordSize),
	}, nil
}

// Write - append one record
func (w *BinaryWriter) Write(record ChunkMarshaler) error {
	record.MarshalChunk(w.chunk)
	if _, err := w.out.Write(w.chunk); nil != err {
		return err
	}
	w.count += 1
	return nil
}

// Count - number of records written so far
func (w *BinaryWriter) Count() uint64 {
	return w.count
}

// Flush - push buffered records to the file
func (w *BinaryWriter) Flush() error {
	return w.out.Flush()
}

// Close - flush and release the underlying file
func (w *BinaryWriter) Close() error {
	if err := w.out.Flush(); nil != err {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
