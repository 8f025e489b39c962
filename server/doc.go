// Package server exposes the HTTP surface: document upload, HTML body
// upload, and search. Uploads are stored in the blob repository and handed
// to the ingestion trigger asynchronously; the upload response does not
// wait for indexing.
package server
