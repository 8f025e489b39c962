// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/evidex/core"
)

// MarshalBlobInfo serializes a BlobInfo to bytes.
func MarshalBlobInfo(info *core.BlobInfo) []byte {
	buf := make([]byte, core.BlobInfoMUS.Size(*info))
	core.BlobInfoMUS.Marshal(*info, buf)
	return buf
}

// UnmarshalBlobInfo deserializes a BlobInfo from bytes.
func UnmarshalBlobInfo(data []byte) (*core.BlobInfo, error) {
	info, _, err := core.BlobInfoMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
