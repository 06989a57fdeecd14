// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fileio

import (
	"encoding/csv"
	"io"
	"os"
)

// RowUnmarshaler - parse one CSV row into the receiver
type RowUnmarshaler interface {
	UnmarshalRow(row []string) error
}

// RowMarshaler - append the receiver's fields to a CSV row
type RowMarshaler interface {
	MarshalRow(row []string) []string
}

// CsvReader - read a headerless CSV file row by row
type CsvReader struct {
	file  *os.File
	in    *csv.Reader
	count uint64
}

// NewCsvReader - open a CSV file for reading
func NewCsvReader(path string) (*CsvReader, error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, err
	}

	in := csv.NewReader(file)
	in.FieldsPerRecord = -1 // record types validate their own width

	return &CsvReader{
		file: file,
		in:   in,
	}, nil
}

// Read - parse the next row into record, io.EOF when exhausted
func (r *CsvReader) Read(record RowUnmarshaler) error {
	row, err := r.in.Read()
	if nil != err {
		return err
	}
	if err := record.UnmarshalRow(row); nil != err {
		return err
	}
	r.count += 1
	return nil
}

// ForEach - parse every remaining row into record, calling fn after
// each successful parse; record is reused between rows
func (r *CsvReader) ForEach(record RowUnmarshaler, fn func() error) error {
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

// Count - number of rows read so far
func (r *CsvReader) Count() uint64 {
	return r.count
}

// Size - number of bytes in the opened file
func (r *CsvReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if nil != err {
		return 0, err
	}
	return info.Size(), nil
}

// Close - release the underlying file
func (r *CsvReader) Close() error {
	return r.file.Close()
}

// CsvWriter - write a headerless CSV file row by row
type CsvWriter struct {
	file  *os.File
	out   *csv.Writer
	row   []string // reused marshalling buffer
	count uint64
}

// NewCsvWriter - create or truncate a CSV file for writing
func NewCsvWriter(path string) (*CsvWriter, error) {
	file, err := os.Create(path)
	if nil != err {
		return nil, err
	}
	return &CsvWriter{
		file: file,
		out:  csv.NewWriter(file),
	}, nil
}

// Write - append one record as a row
func (w *CsvWriter) Write(record RowMarshaler) error {
	w.row = record.MarshalRow(w.row[:0])
	if err := w.out.Write(w.row); nil != err {
		return err
	}
	w.count += 1
	return nil
}

// Count - number of rows written so far
func (w *CsvWriter) Count() uint64 {
	return w.count
}

// Flush - push buffered rows to the file
func (w *CsvWriter) Flush() error {
	w.out.Flush()
	return w.out.Error()
}

// Close - flush and release the underlying file
func (w *CsvWriter) Close() error {
	w.out.Flush()
	if err := w.out.Error(); nil != err {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
