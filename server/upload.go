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


package server

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/poiesic/evidex/core"
	"github.com/poiesic/evidex/ingest"
	"github.com/poiesic/evidex/storage"
)

// handleUpload stores a request body as a blob. The file name and type come
// from the file_name and file_type headers; an optional outputPath header
// overrides the target container and path prefix.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	fileName := r.Header.Get("file_name")
	fileType := r.Header.Get("file_type")

	if fileName == "" {
		s.writeError(w, http.StatusBadRequest, "file_name is required in headers")
		return
	}
	if fileType == "" {
		s.writeError(w, http.StatusBadRequest, "file_type is required in headers")
		return
	}

	if !strings.HasPrefix(fileType, ".") {
		fileType = "." + fileType
	}
	if !strings.HasSuffix(fileName, fileType) {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("file_name must end with the specified file_type: %s", fileType))
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("error reading upload body", "name", fileName, "err", err)
		s.writeError(w, http.StatusInternalServerError, genericUploadError)
		return
	}

	container, blobPath := resolveOutputPath(r.Header.Get("outputPath"), fileName, s.container)

	contentType := mime.TypeByExtension(fileType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.blobs.PutBlob(r.Context(), container, blobPath, content, storage.PutOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("error storing blob", "container", container, "name", blobPath, "err", err)
		s.writeError(w, http.StatusInternalServerError, genericUploadError)
		return
	}

	s.dispatchIngestion(container, blobPath, contentType, int64(len(content)))

	s.writeJSON(w, http.StatusAccepted, map[string]string{
		"message": fmt.Sprintf("File uploaded successfully to blob at %s/%s", container, blobPath),
	})
}

// handleUploadHTML stores a scraped HTML body. The form fields url and body
// are both required; the blob name derives from the URL and the original
// URL is retained as metadata.
func (s *Server) handleUploadHTML(w http.ResponseWriter, r *http.Request) {
	pageURL := r.FormValue("url")
	body := r.FormValue("body")

	if pageURL == "" || body == "" {
		s.writeError(w, http.StatusBadRequest, "Both 'url' and 'body' are required in form-data")
		return
	}

	filename := htmlFilename(pageURL)

	_, err := s.blobs.PutBlob(r.Context(), s.htmlContainer, filename, []byte(body), storage.PutOptions{
		ContentType: "text/html",
		Metadata:    map[string]string{"original_url": pageURL},
	})
	if err != nil {
		s.logger.Error("error storing html blob", "name", filename, "err", err)
		s.writeError(w, http.StatusInternalServerError, genericUploadError)
		return
	}

	s.dispatchIngestion(s.htmlContainer, filename, "text/html", int64(len(body)))

	s.writeJSON(w, http.StatusAccepted, map[string]string{
		"message":     "HTML content uploaded successfully",
		"container":   s.htmlContainer,
		"filename":    filename,
		"originalUrl": pageURL,
	})
}

// dispatchIngestion hands a stored blob to the ingestion trigger on the
// dispatch pool. Upload responses never wait for indexing; dispatch
// failures are logged only.
func (s *Server) dispatchIngestion(container, name, contentType string, size int64) {
	if s.trigger == nil {
		return
	}

	event := ingest.BlobCreatedEvent{
		Type:          ingest.EventTypeBlobCreated,
		URL:           core.StorageURL(s.account, container, name),
		ContentLength: size,
		ContentType:   contentType,
	}

	err := s.dispatch.Submit(func() {
		if _, handleErr := s.trigger.Handle(context.Background(), event); handleErr != nil {
			s.logger.Error("error ingesting uploaded blob", "container", container, "name", name, "err", handleErr)
		}
	})
	if err != nil {
		s.logger.Error("error dispatching ingestion", "name", name, "err", err)
	}
}

// resolveOutputPath maps the optional outputPath header to a container and
// blob path. The first path segment names the container; remaining segments
// prefix the file name.
func resolveOutputPath(outputPath, fileName, defaultContainer string) (container, blobPath string) {
	container = defaultContainer
	blobPath = fileName

	outputPath = strings.Trim(outputPath, "/")
	if outputPath == "" {
		return container, blobPath
	}

	segments := strings.Split(outputPath, "/")
	container = segments[0]
	if len(segments) > 1 {
		blobPath = strings.Join(segments[1:], "/") + "/" + fileName
	}
	return container, blobPath
}

// htmlFilename derives a blob name from a page URL: scheme stripped, path
// separators replaced with underscores, an .html suffix forced, and percent
// escapes decoded.
func htmlFilename(pageURL string) string {
	name := strings.TrimRight(pageURL, "/")
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	name = strings.ReplaceAll(name, "/", "_")

	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}

	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	return name
}
