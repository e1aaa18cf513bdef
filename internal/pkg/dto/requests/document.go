package requests

type UploadDocument struct {
	FileName string `json:"fileName" validate:"required,max=255"`
	MimeType string `json:"mimeType" validate:"required"`
	Tag      string `json:"tag" validate:"required,oneof=lab-result prescription report image other"`
	Notes    string `json:"notes"`
	// Content is base64 in the JSON body; multipart uploads bypass it.
	Content []byte `json:"content" validate:"required"`
}
