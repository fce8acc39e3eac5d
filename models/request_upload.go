package models

// UploadPart is a single multipart/form-data part carrying one image.
type UploadPart struct {
	// FieldName is the form field name, "image1".."imageN".
	FieldName string
	// FileName is the advertised file name, "image1.jpg".."imageN.jpg".
	FileName string
	// ContentType is the part content type, always "image/jpeg".
	ContentType string
	// Data is the raw image payload.
	Data []byte
}

// UploadRequest is the ephemeral description of one batch upload. Parts are
// kept in buffer order.
type UploadRequest struct {
	// Boundary separates parts in the encoded body and must be unique per
	// request.
	Boundary string
	// Parts holds one entry per buffered image.
	Parts []UploadPart
}

// ContentType returns the request header value announcing the boundary.
func (r UploadRequest) ContentType() string {
	return "multipart/form-data; boundary=" + r.Boundary
}
