// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that send "Accept-Encoding: gzip". Responses without a body
// (HEAD, 204, 304) are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipRequestBody(r.Body)
			if err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			defer body.Close()
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")

		if r.Method == http.MethodHead || !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// gzipRequestBody returns its reader to the pool on Close. Close is
// idempotent and reads after Close report io.ErrClosedPipe.
type gzipRequestBody struct {
	zr  *gzip.Reader
	src io.ReadCloser
}

func newGzipRequestBody(src io.ReadCloser) (*gzipRequestBody, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &gzipRequestBody{zr: zr, src: src}, nil
}

func (b *gzipRequestBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		return 0, io.ErrClosedPipe
	}
	return b.zr.Read(p)
}

func (b *gzipRequestBody) Close() error {
	if b.zr == nil {
		return nil
	}
	b.zr.Close()
	gzipReaderPool.Put(b.zr)
	b.zr = nil
	return b.src.Close()
}

// gzipResponseWriter decides on compression at the first WriteHeader or
// Write, whichever comes first.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}
