// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	map1E1pHΔjuhXLbIb8tZn7DsgΞΞ = ord.NewMapSer[string, string](ord.String, ord.String)
)

var BlobInfoMUS = blobInfoMUS{}

type blobInfoMUS struct{}

func (s blobInfoMUS) Marshal(v BlobInfo, bs []byte) (n int) {
	n = ord.String.Marshal(v.Container, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.ContentType, bs[n:])
	n += varint.Int64.Marshal(v.Size, bs[n:])
	n += ord.String.Marshal(v.ETag, bs[n:])
	n += map1E1pHΔjuhXLbIb8tZn7DsgΞΞ.Marshal(v.Metadata, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UploadedAt, bs[n:])
}

func (s blobInfoMUS) Unmarshal(bs []byte) (v BlobInfo, n int, err error) {
	v.Container, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContentType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Size, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ETag, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = map1E1pHΔjuhXLbIb8tZn7DsgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UploadedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s blobInfoMUS) Size(v BlobInfo) (size int) {
	size = ord.String.Size(v.Container)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.ContentType)
	size += varint.Int64.Size(v.Size)
	size += ord.String.Size(v.ETag)
	size += map1E1pHΔjuhXLbIb8tZn7DsgΞΞ.Size(v.Metadata)
	return size + raw.TimeUnixMicro.Size(v.UploadedAt)
}

func (s blobInfoMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = map1E1pHΔjuhXLbIb8tZn7DsgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
