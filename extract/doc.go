// Package extract turns raw document bytes into plain text.
//
// PDF documents are decoded page by page and concatenated; everything else
// is treated as text, decoded as UTF-8 with a Latin-1 fallback so that no
// byte sequence is ever rejected.
package extract
