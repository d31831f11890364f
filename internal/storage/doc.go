// Package storage accesses the S3-compatible object store holding uploaded
// media and rendered subtitle files.
package storage
