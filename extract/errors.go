package extract

import "errors"

var (
	// ErrPDFParse indicates the PDF decoder could not parse the byte stream.
	ErrPDFParse = errors.New("cannot parse pdf content")
)
