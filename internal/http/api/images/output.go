package images

// UploadOutput for POST /api/upload-image
type UploadOutput struct {
	Location string `header:"Location" doc:"Public URL of the stored image"`
	Body     UploadResult
}

// UploadResult is the body of a successful upload.
type UploadResult struct {
	URL string `json:"url" doc:"Public URL of the stored image" example:"/data/images/profile-1700000000.png"`
}
