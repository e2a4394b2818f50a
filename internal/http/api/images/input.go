package images

// UploadInput for POST /api/upload-image
type UploadInput struct {
	Body struct {
		ImageData string `json:"imageData,omitempty" doc:"Image as a data URI or <mime>;base64,<data>" example:"data:image/png;base64,iVBORw0KGgo="`
		Filename  string `json:"filename,omitempty"  doc:"Bare file name to store the image under"     example:"profile-1700000000.png"`
	}
}
