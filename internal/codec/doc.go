// Package codec serializes a capture batch into the multipart/form-data body
// expected by the depth endpoint.
//
// Encoding is a pure function of the images and the boundary token: the same
// inputs always produce the same bytes. Each image i (1-indexed) becomes a
// part named "image{i}" with file name "image{i}.jpg" and content type
// "image/jpeg". Boundary tokens come from [NewBoundary] and must not occur in
// any payload; image bytes are never escaped.
package codec
